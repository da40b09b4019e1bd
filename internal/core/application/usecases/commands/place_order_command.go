package commands

import (
	"errors"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrGarmentTypeIsRequired = errors.New("garment type is required")
)

// PlaceOrderCommand represents a request to place a new tailoring order.
// Encapsulates order details including the chosen tailor, garment type,
// body measurements and the agreed payment terms.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, requesterID, tailorID,
//	    "sherwani", measurements, 450000, 100000, order.DepositOnline)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	requesterID   kernel.UUID
	tailorID      kernel.UUID
	garmentType   string
	measurements  map[string]float64
	totalAmount   int64
	depositAmount int64
	depositMode   order.DepositMode

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that all identifiers are valid, the garment type is not empty
// and the deposit mode is a known value. The payment amounts are validated
// by the payment constructor inside the handler.
func NewPlaceOrderCommand(
	orderID, requesterID, tailorID kernel.UUID,
	garmentType string,
	measurements map[string]float64,
	totalAmount, depositAmount int64,
	depositMode order.DepositMode,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		measurements:  measurements,
		totalAmount:   totalAmount,
		depositAmount: depositAmount,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRequesterID(requesterID),
		cmd.setTailorID(tailorID),
		cmd.setGarmentType(garmentType),
		cmd.setDepositMode(depositMode),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RequesterID returns the identifier of the customer placing the order.
func (c PlaceOrderCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// TailorID returns the identifier of the tailor chosen for the order.
func (c PlaceOrderCommand) TailorID() kernel.UUID {
	return c.tailorID
}

// GarmentType returns the kind of garment being commissioned.
func (c PlaceOrderCommand) GarmentType() string {
	return c.garmentType
}

// Measurements returns the named body measurements in centimeters.
func (c PlaceOrderCommand) Measurements() map[string]float64 {
	return c.measurements
}

// TotalAmount returns the agreed total price in minor currency units.
func (c PlaceOrderCommand) TotalAmount() int64 {
	return c.totalAmount
}

// DepositAmount returns the upfront deposit in minor currency units.
func (c PlaceOrderCommand) DepositAmount() int64 {
	return c.depositAmount
}

// DepositMode returns how the deposit will be collected.
func (c PlaceOrderCommand) DepositMode() order.DepositMode {
	return c.depositMode
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	c.requesterID = requesterID
	return nil
}

func (c *PlaceOrderCommand) setTailorID(tailorID kernel.UUID) error {
	if err := tailorID.Validate(); err != nil {
		return err
	}

	c.tailorID = tailorID
	return nil
}

func (c *PlaceOrderCommand) setGarmentType(garmentType string) error {
	if garmentType == "" {
		return ErrGarmentTypeIsRequired
	}

	c.garmentType = garmentType
	return nil
}

func (c *PlaceOrderCommand) setDepositMode(mode order.DepositMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.depositMode = mode
	return nil
}
