package queries

import (
	"errors"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/guard"
)

var ErrGetRequesterOrdersQueryIsNotConstructed = errors.New(
	"GetRequesterOrdersQuery must be created via NewGetRequesterOrdersQuery constructor",
)

// GetRequesterOrdersQuery retrieves the order history of one customer,
// newest placements first.
type GetRequesterOrdersQuery struct {
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRequesterOrdersQuery creates a query for a requester's order history.
func NewGetRequesterOrdersQuery(requesterID kernel.UUID) (GetRequesterOrdersQuery, error) {
	if err := requesterID.Validate(); err != nil {
		return GetRequesterOrdersQuery{}, err
	}

	return GetRequesterOrdersQuery{
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRequesterOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRequesterOrdersQueryIsNotConstructed)
}

// RequesterID returns the identifier of the customer.
func (q GetRequesterOrdersQuery) RequesterID() kernel.UUID {
	return q.requesterID
}
