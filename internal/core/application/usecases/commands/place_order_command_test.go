package commands_test

import (
	"testing"

	"tailoring/internal/core/application/usecases/commands"
	"tailoring/internal/core/domain/model/kernel"
	"tailoring/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	// Arrange
	orderID := kernel.NewUUID()
	requesterID := kernel.NewUUID()
	tailorID := kernel.NewUUID()
	measurements := map[string]float64{"chest": 96.5, "waist": 81}

	// Act
	cmd, err := commands.NewPlaceOrderCommand(orderID, requesterID, tailorID,
		"sherwani", measurements, 450000, 100000, order.DepositOnline)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, requesterID, cmd.RequesterID())
	assert.Equal(t, tailorID, cmd.TailorID())
	assert.Equal(t, "sherwani", cmd.GarmentType())
	assert.Equal(t, measurements, cmd.Measurements())
	assert.Equal(t, int64(450000), cmd.TotalAmount())
	assert.Equal(t, int64(100000), cmd.DepositAmount())
	assert.Equal(t, order.DepositOnline, cmd.DepositMode())
	assert.NoError(t, cmd.Validate())
}

func TestNewPlaceOrderCommand_InvalidInput(t *testing.T) {
	valid := kernel.NewUUID()

	t.Run("should fail with empty garment type", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(valid, valid, valid,
			"", nil, 1000, 0, order.DepositCash)
		require.ErrorIs(t, err, commands.ErrGarmentTypeIsRequired)
	})

	t.Run("should fail with unconstructed order id", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, valid, valid,
			"kurta", nil, 1000, 0, order.DepositCash)
		require.Error(t, err)
	})

	t.Run("should fail with unknown deposit mode", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(valid, valid, valid,
			"kurta", nil, 1000, 0, order.DepositMode(99))
		require.Error(t, err)
	})
}

func TestPlaceOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.PlaceOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}
