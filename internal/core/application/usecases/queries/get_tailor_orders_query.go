package queries

import (
	"errors"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/guard"
)

var ErrGetTailorOrdersQueryIsNotConstructed = errors.New(
	"GetTailorOrdersQuery must be created via NewGetTailorOrdersQuery constructor",
)

// GetTailorOrdersQuery retrieves a tailor's work queue, most recently
// updated first. The filter narrows the listing to ongoing orders or to
// one exact status; by default every order is returned.
type GetTailorOrdersQuery struct {
	tailorID kernel.UUID
	filter   order.ListFilter

	guard guard.ConstructorGuard
}

// NewGetTailorOrdersQuery creates a query for a tailor's work queue.
func NewGetTailorOrdersQuery(tailorID kernel.UUID, filter order.ListFilter) (GetTailorOrdersQuery, error) {
	if err := tailorID.Validate(); err != nil {
		return GetTailorOrdersQuery{}, err
	}

	return GetTailorOrdersQuery{
		tailorID: tailorID,
		filter:   filter,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTailorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetTailorOrdersQueryIsNotConstructed)
}

// TailorID returns the identifier of the tailor.
func (q GetTailorOrdersQuery) TailorID() kernel.UUID {
	return q.tailorID
}

// Filter returns the status filter applied to the listing.
func (q GetTailorOrdersQuery) Filter() order.ListFilter {
	return q.filter
}
