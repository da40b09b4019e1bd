// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by requester, tailor and lifecycle status.
type OrderDTO struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	RequesterID      uuid.UUID        `gorm:"type:uuid;index"`
	TailorID         uuid.UUID        `gorm:"type:uuid;index"`
	GarmentType      string           `gorm:"not null"`
	Measurements     MeasurementsJSON `gorm:"type:jsonb"`
	Payment          PaymentDTO       `gorm:"embedded"`
	Status           int              `gorm:"index"`
	VerificationCode string           `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// PaymentDTO represents the embedded payment breakdown within the order table.
// Amounts are stored in minor currency units.
type PaymentDTO struct {
	TotalAmount     int64
	DepositAmount   int64
	RemainingAmount int64
	DepositMode     int
	DepositStatus   int
	PaymentStatus   int
}

// MeasurementsJSON stores the named measurement map as a jsonb column.
type MeasurementsJSON map[string]float64

// Value implements driver.Valuer.
func (m MeasurementsJSON) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *MeasurementsJSON) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported measurements column type %T", value)
	}
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	payment := aggregate.Payment()

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		RequesterID:  aggregate.RequesterID().Bytes(),
		TailorID:     aggregate.TailorID().Bytes(),
		GarmentType:  aggregate.GarmentType(),
		Measurements: aggregate.Measurements(),
		Payment: PaymentDTO{
			TotalAmount:     payment.TotalAmount(),
			DepositAmount:   payment.DepositAmount(),
			RemainingAmount: payment.RemainingAmount(),
			DepositMode:     int(payment.DepositMode()),
			DepositStatus:   int(payment.DepositStatus()),
			PaymentStatus:   int(payment.PaymentStatus()),
		},
		Status:           int(aggregate.Status()),
		VerificationCode: aggregate.VerificationCode(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including payment state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	tailorID, err := kernel.UUIDFromBytes(dto.TailorID[:])
	if err != nil {
		return nil, err
	}

	payment, err := order.RestorePayment(
		dto.Payment.TotalAmount,
		dto.Payment.DepositAmount,
		dto.Payment.RemainingAmount,
		order.DepositMode(dto.Payment.DepositMode),
		order.DepositStatus(dto.Payment.DepositStatus),
		order.PaymentStatus(dto.Payment.PaymentStatus),
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, requesterID, tailorID,
		dto.GarmentType,
		dto.Measurements,
		payment,
		order.Status(dto.Status),
		dto.VerificationCode,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
