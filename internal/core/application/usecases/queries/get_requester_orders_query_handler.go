package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRequesterOrdersQueryHandler retrieves a customer's orders from the
// database, most recently placed first.
type GetRequesterOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRequesterOrdersQueryHandler creates a handler for requester order
// history queries. Requires a GORM database connection.
func NewGetRequesterOrdersQueryHandler(db *gorm.DB) GetRequesterOrdersQueryHandler {
	return GetRequesterOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice when the requester has
// no orders.
func (h GetRequesterOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRequesterOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			requester_id,
			tailor_id,
			garment_type,
			status,
			total_amount,
			deposit_amount,
			remaining_amount,
			deposit_mode,
			deposit_status,
			payment_status,
			verification_code,
			created_at,
			updated_at
		FROM orders
		WHERE requester_id = ?
		ORDER BY created_at DESC
	`, query.RequesterID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
