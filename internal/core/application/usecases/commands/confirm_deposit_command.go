package commands

import (
	"errors"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/pkg/guard"
)

var ErrConfirmDepositCommandIsNotConstructed = errors.New(
	"ConfirmDepositCommand must be created via NewConfirmDepositCommand constructor",
)

// ConfirmDepositCommand represents confirmation that the order's deposit has
// been received, either in cash at the workshop or through an online payment.
type ConfirmDepositCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDepositCommand creates a command to confirm an order's deposit.
func NewConfirmDepositCommand(orderID kernel.UUID) (ConfirmDepositCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmDepositCommand{}, err
	}

	return ConfirmDepositCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDepositCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDepositCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose deposit is confirmed.
func (c ConfirmDepositCommand) OrderID() kernel.UUID {
	return c.orderID
}
