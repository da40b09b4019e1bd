package queries

import (
	"context"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StalePlacedOrder identifies one order awaiting a tailor's decision
// past the staleness threshold.
type StalePlacedOrder struct {
	ID        kernel.UUID
	TailorID  kernel.UUID
	CreatedAt time.Time
}

// ListStalePlacedOrdersQueryHandler retrieves stale placed orders from
// the database, oldest first.
type ListStalePlacedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListStalePlacedOrdersQueryHandler creates a handler for stale order
// queries. Requires a GORM database connection.
func NewListStalePlacedOrdersQueryHandler(db *gorm.DB) ListStalePlacedOrdersQueryHandler {
	return ListStalePlacedOrdersQueryHandler{db: db}
}

// Handle executes the query against the current clock.
func (h ListStalePlacedOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListStalePlacedOrdersQuery,
) ([]StalePlacedOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.StaleAfter())
	stale := make([]StalePlacedOrder, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tailor_id,
			created_at
		FROM orders
		WHERE status = ? AND created_at < ?
		ORDER BY created_at
	`, int(order.Placed), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry StalePlacedOrder
		var id, tailorID uuid.UUID

		if err = rows.Scan(&id, &tailorID, &entry.CreatedAt); err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.TailorID, err = kernel.UUIDFromBytes(tailorID[:]); err != nil {
			return nil, err
		}

		stale = append(stale, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stale, nil
}
