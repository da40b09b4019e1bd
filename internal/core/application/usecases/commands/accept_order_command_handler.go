package commands

import (
	"context"
	"log/slog"

	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/ports"
)

// AcceptOrderCommandHandler moves a placed order into Accepted status.
// The write is conditional on the status read at the start of the
// transaction, so a concurrent reject or cancel makes this command fail
// with the transition error matching the order's actual state.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(uowFactory, publisher, logger)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrInvalidTransition) {
//	    log.Println("order is no longer awaiting a decision")
//	}
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   eventNotifier
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
// The publisher may be nil when integration events are not wired.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   newEventNotifier(publisher, logger),
	}
}

// Handle processes the acceptance command.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	aggregate, err := applyStatusTransition(ctx, uow.OrderRepository(), cmd.OrderID(), (*order.Order).Accept)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.notifyStatusChanged(ctx, aggregate)
	return nil
}
