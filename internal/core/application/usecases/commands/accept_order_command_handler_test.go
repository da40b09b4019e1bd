package commands_test

import (
	"testing"
	"time"

	"tailoring/internal/core/application/usecases/commands"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderInStatus(t *testing.T, id kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	payment, err := order.NewPayment(250000, 50000, order.DepositCash)
	require.NoError(t, err)
	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		id, kernel.NewUUID(), kernel.NewUUID(),
		"kurta", map[string]float64{"chest": 96.5},
		payment, status, "483920", now, now,
	)
	require.NoError(t, err)
	return o
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(id)
	require.NoError(t, err)

	placed := orderInStatus(t, id, order.Placed)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(placed, nil).Once(),
		repo.On("UpdateStatusFrom", mock.Anything, placed, order.Placed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, nil, nil)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Accepted, placed.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_AlreadyDecided(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(id)
	require.NoError(t, err)

	rejected := orderInStatus(t, id, order.Rejected)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(rejected, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, nil, nil)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	repo.AssertExpectations(t)
}

// Simulates losing the conditional write to a concurrent rejection. The
// handler must re-read and report the transition error against the winner's
// state rather than the raw conflict.
func TestAcceptOrderCommandHandler_Handle_LostRaceToReject(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(id)
	require.NoError(t, err)

	placed := orderInStatus(t, id, order.Placed)
	rejected := orderInStatus(t, id, order.Rejected)
	conflict := errs.NewVersionConflictError("order", id.String(), order.Placed)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(placed, nil).Once(),
		repo.On("UpdateStatusFrom", mock.Anything, placed, order.Placed).Return(conflict).Once(),
		repo.On("Get", mock.Anything, id).Return(rejected, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, nil, nil)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	require.NotErrorIs(t, err, errs.ErrVersionConflict)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(id)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("order", id.String())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, nil, nil)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAcceptOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	h := commands.NewAcceptOrderCommandHandler(factory, nil, nil)
	err := h.Handle(ctx, commands.AcceptOrderCommand{})
	require.ErrorIs(t, err, commands.ErrAcceptOrderCommandIsNotConstructed)
}
