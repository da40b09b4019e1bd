package ports

import (
	"context"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate unconditionally.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatusFrom persists the aggregate only if the stored row is still
	// in the expected status. The write is conditional at the database level,
	// so two concurrent transitions from the same status cannot both succeed.
	// Returns errs.VersionConflictError when the stored status no longer
	// matches expected.
	UpdateStatusFrom(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its payment and verification state.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByRequester retrieves all orders placed by a requester,
	// newest placements first.
	GetByRequester(ctx context.Context, requesterID kernel.UUID) ([]*order.Order, error)

	// GetByTailor retrieves orders assigned to a tailor, narrowed by the
	// given status filter and ordered by most recent activity first.
	GetByTailor(ctx context.Context, tailorID kernel.UUID, filter order.ListFilter) ([]*order.Order, error)
}
