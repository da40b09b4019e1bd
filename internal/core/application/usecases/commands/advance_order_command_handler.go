package commands

import (
	"context"
	"log/slog"

	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/ports"
)

// AdvanceOrderCommandHandler moves an order one step along the fixed
// production sequence. Each status has at most one successor, so the command
// carries no target status. Orders past the last step fail with
// order.ErrNoFurtherTransition; two racing advances can only apply one step
// because the write is conditional on the status read at the start.
//
// Example:
//
//	handler := NewAdvanceOrderCommandHandler(uowFactory, publisher, logger)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrNoFurtherTransition) {
//	    log.Println("order already delivered")
//	}
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   eventNotifier
}

// NewAdvanceOrderCommandHandler creates a handler for order advancement.
// The publisher may be nil when integration events are not wired.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   newEventNotifier(publisher, logger),
	}
}

// Handle processes the advancement command.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	aggregate, err := applyStatusTransition(ctx, uow.OrderRepository(), cmd.OrderID(), (*order.Order).Advance)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.notifyStatusChanged(ctx, aggregate)
	return nil
}
