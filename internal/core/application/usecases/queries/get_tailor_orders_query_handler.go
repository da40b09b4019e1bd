package queries

import (
	"context"

	"tailoring/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetTailorOrdersQueryHandler retrieves a tailor's assigned orders from the
// database, most recently updated first.
type GetTailorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetTailorOrdersQueryHandler creates a handler for tailor work queue
// queries. Requires a GORM database connection.
func NewGetTailorOrdersQueryHandler(db *gorm.DB) GetTailorOrdersQueryHandler {
	return GetTailorOrdersQueryHandler{db: db}
}

// Handle executes the query with the requested status filter.
// Returns an empty slice when nothing matches.
func (h GetTailorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetTailorOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
		WHERE tailor_id = ?
	`
	args := []any{query.TailorID().String()}

	switch query.Filter().Kind() {
	case order.FilterOngoing:
		statuses := make([]int, 0, len(order.OngoingStatuses()))
		for _, s := range order.OngoingStatuses() {
			statuses = append(statuses, int(s))
		}
		sql += ` AND status IN ?`
		args = append(args, statuses)
	case order.FilterExact:
		sql += ` AND status = ?`
		args = append(args, int(query.Filter().Status()))
	case order.FilterAll:
	}

	sql += ` ORDER BY updated_at DESC`

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanOrderResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		// The tailor only learns the verification code once the garment
		// is ready for handover. Before that it belongs to the requester.
		if resp.Status != order.Ready.String() && resp.Status != order.Delivered.String() {
			resp.VerificationCode = ""
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
