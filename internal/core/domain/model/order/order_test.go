package order_test

import (
	"testing"
	"time"

	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"
	"tailoring/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPayment(t *testing.T, total, deposit int64) order.Payment {
	t.Helper()
	p, err := order.NewPayment(total, deposit, order.DepositCash)
	require.NoError(t, err)
	return p
}

func newPlacedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"sherwani",
		map[string]float64{"chest": 102, "waist": 86},
		newTestPayment(t, 100000, 10000),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create placed order with pending deposit", func(t *testing.T) {
		o := newPlacedOrder(t)

		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, order.PaymentPendingDeposit, o.Payment().PaymentStatus())
		assert.Equal(t, int64(90000), o.Payment().RemainingAmount())
		assert.Len(t, o.VerificationCode(), 6)
		assert.False(t, o.CreatedAt().IsZero())
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
	})

	t.Run("should fail when party identifiers are missing", func(t *testing.T) {
		var missing kernel.UUID

		_, err := order.NewOrder(kernel.NewUUID(), missing, kernel.NewUUID(),
			"kurta", nil, newTestPayment(t, 1000, 100))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), missing,
			"kurta", nil, newTestPayment(t, 1000, 100))
		require.Error(t, err)
	})

	t.Run("should fail when garment type is empty", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", nil, newTestPayment(t, 1000, 100))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unconstructed payment", func(t *testing.T) {
		var p order.Payment

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"kurta", nil, p)

		require.Error(t, err)
	})

	t.Run("should isolate callers from the stored measurements", func(t *testing.T) {
		o := newPlacedOrder(t)

		m := o.Measurements()
		m["chest"] = 1

		assert.InDelta(t, 102, o.Measurements()["chest"], 1e-9)
	})
}

func TestOrder_AcceptRejectCancel(t *testing.T) {
	t.Run("should accept placed orders only", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.NoError(t, o.Accept())
		assert.Equal(t, order.Accepted, o.Status())

		err := o.Accept()
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should reject placed orders only", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.NoError(t, o.Reject())
		assert.Equal(t, order.Rejected, o.Status())

		assert.ErrorIs(t, o.Reject(), order.ErrInvalidTransition)
		assert.ErrorIs(t, o.Accept(), order.ErrInvalidTransition)
	})

	t.Run("should cancel placed orders only", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())

		assert.ErrorIs(t, o.Advance(), order.ErrNoFurtherTransition)
	})

	t.Run("should refresh updatedAt on transition", func(t *testing.T) {
		o := newPlacedOrder(t)
		created := o.UpdatedAt()

		time.Sleep(time.Millisecond)
		require.NoError(t, o.Accept())

		assert.True(t, o.UpdatedAt().After(created))
		assert.Equal(t, created, o.CreatedAt())
	})
}

func TestOrder_ConfirmDeposit(t *testing.T) {
	t.Run("should force Accepted in legacy mode regardless of prior status", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.Accept())
		require.NoError(t, o.Advance()) // Cutting

		require.NoError(t, o.ConfirmDeposit(false))

		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, order.DepositPaid, o.Payment().DepositStatus())
		assert.Equal(t, order.PaymentDepositPaid, o.Payment().PaymentStatus())
	})

	t.Run("should require Placed in strict mode", func(t *testing.T) {
		o := newPlacedOrder(t)
		require.NoError(t, o.Accept())

		err := o.ConfirmDeposit(true)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.DepositPending, o.Payment().DepositStatus())
	})

	t.Run("should confirm and accept from Placed in strict mode", func(t *testing.T) {
		o := newPlacedOrder(t)

		require.NoError(t, o.ConfirmDeposit(true))

		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, order.DepositPaid, o.Payment().DepositStatus())
	})
}

// Walks the complete production workflow: place, accept, then five advances
// ending in Delivered, with a sixth advance failing.
func TestOrder_FullLifecycle(t *testing.T) {
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"lehenga",
		map[string]float64{"waist": 78},
		newTestPayment(t, 1000, 100),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(900), o.Payment().RemainingAmount())
	assert.Equal(t, order.Placed, o.Status())
	assert.Equal(t, order.PaymentPendingDeposit, o.Payment().PaymentStatus())

	require.NoError(t, o.Accept())
	assert.Equal(t, order.Accepted, o.Status())

	expected := []order.Status{
		order.Cutting, order.Stitching, order.Finishing, order.Ready, order.Delivered,
	}
	for _, want := range expected {
		require.NoError(t, o.Advance())
		assert.Equal(t, want, o.Status())
	}

	err = o.Advance()
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrNoFurtherTransition)
	assert.Equal(t, order.Delivered, o.Status())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore a persisted order", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(time.Hour)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"blouse",
			map[string]float64{"bust": 90},
			newTestPayment(t, 2000, 500),
			order.Stitching,
			"042137",
			createdAt, updatedAt,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Stitching, o.Status())
		assert.Equal(t, "042137", o.VerificationCode())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"blouse", nil, newTestPayment(t, 2000, 500),
			order.Unknown, "042137", time.Now(), time.Now(),
		)

		require.Error(t, err)
	})

	t.Run("should reject missing verification code", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"blouse", nil, newTestPayment(t, 2000, 500),
			order.Placed, "", time.Now(), time.Now(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject zero-value and nil orders", func(t *testing.T) {
		var o *order.Order
		require.Error(t, o.Validate())

		require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})
}
