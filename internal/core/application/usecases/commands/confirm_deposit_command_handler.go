package commands

import (
	"context"
	"log/slog"

	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/ports"
)

// ConfirmDepositCommandHandler marks an order's deposit as paid.
//
// In the default mode confirming the deposit of a Placed order also moves
// it to Accepted, preserving the behavior of cash-first workshops where
// handing over the deposit is the acceptance. With requirePlaced enabled
// the handler is strict: the order must be exactly in Placed status and
// anything else fails with order.ErrInvalidTransition.
type ConfirmDepositCommandHandler struct {
	uowFactory    OrderUoWFactory
	requirePlaced bool
	notifier      eventNotifier
}

// NewConfirmDepositCommandHandler creates a handler for deposit confirmation.
// The publisher may be nil when integration events are not wired.
func NewConfirmDepositCommandHandler(
	uowFactory OrderUoWFactory,
	requirePlaced bool,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ConfirmDepositCommandHandler {
	return ConfirmDepositCommandHandler{
		uowFactory:    uowFactory,
		requirePlaced: requirePlaced,
		notifier:      newEventNotifier(publisher, logger),
	}
}

// Handle processes the deposit confirmation command.
func (h *ConfirmDepositCommandHandler) Handle(ctx context.Context, cmd ConfirmDepositCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := applyStatusTransition(ctx, uow.OrderRepository(), cmd.OrderID(),
		func(o *order.Order) error {
			return o.ConfirmDeposit(h.requirePlaced)
		})
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.notifyStatusChanged(ctx, aggregate)
	return nil
}
