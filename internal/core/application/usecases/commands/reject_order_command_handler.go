package commands

import (
	"context"
	"log/slog"

	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/ports"
)

// RejectOrderCommandHandler moves a placed order into Rejected status.
// Rejected is terminal. Like acceptance, the write is conditional on the
// status observed at read time, so only one of two racing decisions wins.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   eventNotifier
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
// The publisher may be nil when integration events are not wired.
func NewRejectOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   newEventNotifier(publisher, logger),
	}
}

// Handle processes the rejection command.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	aggregate, err := applyStatusTransition(ctx, uow.OrderRepository(), cmd.OrderID(), (*order.Order).Reject)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.notifyStatusChanged(ctx, aggregate)
	return nil
}
