package order

// FilterKind discriminates the supported ways of narrowing an order listing.
type FilterKind int

const (
	// FilterAll selects orders in any status.
	FilterAll FilterKind = iota
	// FilterOngoing selects orders that have not reached a terminal status.
	FilterOngoing
	// FilterExact selects orders in one specific status.
	FilterExact
)

// ListFilter narrows listing queries by order status.
// The zero value selects all orders.
type ListFilter struct {
	kind   FilterKind
	status Status
}

// FilterAllOrders returns a filter matching every order regardless of status.
func FilterAllOrders() ListFilter {
	return ListFilter{kind: FilterAll}
}

// FilterOngoingOrders returns a filter matching only orders that are still
// moving through the workflow.
func FilterOngoingOrders() ListFilter {
	return ListFilter{kind: FilterOngoing}
}

// FilterByStatus returns a filter matching orders in exactly the given status.
func FilterByStatus(status Status) (ListFilter, error) {
	if err := status.Validate(); err != nil {
		return ListFilter{}, err
	}
	return ListFilter{kind: FilterExact, status: status}, nil
}

// Kind returns the filter discriminator.
func (f ListFilter) Kind() FilterKind {
	return f.kind
}

// Status returns the status an exact filter matches. Meaningful only when
// Kind() is FilterExact.
func (f ListFilter) Status() Status {
	return f.status
}
