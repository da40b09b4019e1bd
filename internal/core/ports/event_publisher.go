package ports

import (
	"context"

	"tailoring/internal/core/domain/model/order"
)

// OrderEventPublisher publishes integration events about order lifecycle
// changes to the message broker. Publishing happens after the owning
// transaction commits; a failed publish is logged, not rolled back.
type OrderEventPublisher interface {
	// PublishStatusChanged emits an event describing the order's current
	// status after a successful transition.
	PublishStatusChanged(ctx context.Context, aggregate *order.Order) error
}
