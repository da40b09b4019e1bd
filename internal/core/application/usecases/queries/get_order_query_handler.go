package queries

import (
	"context"
	"database/sql"
	"errors"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns errs.ErrObjectNotFound when no order exists with the given id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.OrderID().String()).Row()

	resp, err := scanOrderResponse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

// rowScanner lets one scanning routine serve both Row and Rows results.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderResponse(row rowScanner) (OrderResponse, error) {
	var resp OrderResponse
	var id, requesterID, tailorID uuid.UUID
	var status, depositMode, depositStatus, paymentStatus int

	err := row.Scan(
		&id,
		&requesterID,
		&tailorID,
		&resp.GarmentType,
		&status,
		&resp.TotalAmount,
		&resp.DepositAmount,
		&resp.RemainingAmount,
		&depositMode,
		&depositStatus,
		&paymentStatus,
		&resp.VerificationCode,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.RequesterID, err = kernel.UUIDFromBytes(requesterID[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.TailorID, err = kernel.UUIDFromBytes(tailorID[:]); err != nil {
		return OrderResponse{}, err
	}

	resp.Status = order.Status(status).String()
	resp.DepositMode = order.DepositMode(depositMode).String()
	resp.DepositStatus = order.DepositStatus(depositStatus).String()
	resp.PaymentStatus = order.PaymentStatus(paymentStatus).String()

	return resp, nil
}
