package queries

import (
	"errors"
	"time"

	"tailoring/internal/pkg/guard"
)

var (
	ErrListStalePlacedOrdersQueryIsNotConstructed = errors.New(
		"ListStalePlacedOrdersQuery must be created via NewListStalePlacedOrdersQuery constructor",
	)
	ErrStaleAfterIsInvalid = errors.New("stale after duration must be greater than 0")
)

// ListStalePlacedOrdersQuery finds orders that have been sitting in Placed
// status longer than a threshold. The deposit reminder job uses it to nudge
// tailors about undecided orders.
type ListStalePlacedOrdersQuery struct {
	staleAfter time.Duration

	guard guard.ConstructorGuard
}

// NewListStalePlacedOrdersQuery creates a query for stale placed orders.
func NewListStalePlacedOrdersQuery(staleAfter time.Duration) (ListStalePlacedOrdersQuery, error) {
	if staleAfter <= 0 {
		return ListStalePlacedOrdersQuery{}, ErrStaleAfterIsInvalid
	}

	return ListStalePlacedOrdersQuery{
		staleAfter: staleAfter,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListStalePlacedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListStalePlacedOrdersQueryIsNotConstructed)
}

// StaleAfter returns how long an order may stay Placed before counting
// as stale.
func (q ListStalePlacedOrdersQuery) StaleAfter() time.Duration {
	return q.staleAfter
}
