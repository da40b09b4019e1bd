package commands

import (
	"context"
	"errors"
	"log/slog"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/core/ports"
	"tailoring/internal/pkg/errs"
)

// applyStatusTransition loads the order, applies mutate, and writes it back
// conditioned on the status observed at read time. When the conditional write
// loses to a concurrent transition, the order is re-read and mutate is
// replayed against the winner's state: if the replay fails, that precise
// domain error is returned; if it would still succeed, the version conflict
// is surfaced so the caller can retry.
func applyStatusTransition(
	ctx context.Context,
	repo ports.OrderRepository,
	orderID kernel.UUID,
	mutate func(*order.Order) error,
) (*order.Order, error) {
	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	observed := aggregate.Status()
	if err = mutate(aggregate); err != nil {
		return nil, err
	}

	if err = repo.UpdateStatusFrom(ctx, aggregate, observed); err != nil {
		if !errors.Is(err, errs.ErrVersionConflict) {
			return nil, err
		}

		current, getErr := repo.Get(ctx, orderID)
		if getErr != nil {
			return nil, getErr
		}
		if mutErr := mutate(current); mutErr != nil {
			return nil, mutErr
		}
		return nil, err
	}

	return aggregate, nil
}

// eventNotifier emits order integration events after the owning transaction
// has committed. A failed publish is logged and otherwise ignored so the
// committed state change is never undone by broker trouble.
type eventNotifier struct {
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
}

func newEventNotifier(publisher ports.OrderEventPublisher, logger *slog.Logger) eventNotifier {
	if logger == nil {
		logger = slog.Default()
	}

	return eventNotifier{publisher: publisher, logger: logger}
}

func (n eventNotifier) notifyStatusChanged(ctx context.Context, aggregate *order.Order) {
	if n.publisher == nil {
		return
	}

	if err := n.publisher.PublishStatusChanged(ctx, aggregate); err != nil {
		n.logger.Warn("failed to publish order status change",
			"orderId", aggregate.ID().String(),
			"status", aggregate.Status().String(),
			"error", err)
	}
}
