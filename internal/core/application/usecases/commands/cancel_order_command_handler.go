package commands

import (
	"context"
	"log/slog"

	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/ports"
)

// CancelOrderCommandHandler moves a placed order into Cancelled status.
// Cancellation is only allowed while the tailor has not decided yet; a
// concurrent acceptance wins the conditional write and the cancellation
// fails with the matching transition error.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   eventNotifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// The publisher may be nil when integration events are not wired.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   newEventNotifier(publisher, logger),
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	aggregate, err := applyStatusTransition(ctx, uow.OrderRepository(), cmd.OrderID(), (*order.Order).Cancel)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.notifyStatusChanged(ctx, aggregate)
	return nil
}
