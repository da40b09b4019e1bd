package commands_test

import (
	"testing"

	"tailoring/internal/core/application/usecases/commands"
	"tailoring/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterTailorCommand_ValidInput(t *testing.T) {
	// Arrange
	tailorID := kernel.NewUUID()
	location, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	// Act
	cmd, err := commands.NewRegisterTailorCommand(tailorID, "Noor Tailors",
		&location, []string{"sherwani", "kurta"}, true)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, tailorID, cmd.TailorID())
	assert.Equal(t, "Noor Tailors", cmd.Name())
	require.NotNil(t, cmd.Location())
	assert.Equal(t, location, *cmd.Location())
	assert.Equal(t, []string{"sherwani", "kurta"}, cmd.Specializations())
	assert.True(t, cmd.ProvidesFabric())
	assert.NoError(t, cmd.Validate())
}

func TestNewRegisterTailorCommand_WithoutLocation(t *testing.T) {
	cmd, err := commands.NewRegisterTailorCommand(kernel.NewUUID(), "Home Stitch",
		nil, nil, false)

	require.NoError(t, err)
	assert.Nil(t, cmd.Location())
}

func TestNewRegisterTailorCommand_InvalidInput(t *testing.T) {
	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := commands.NewRegisterTailorCommand(kernel.NewUUID(), "", nil, nil, false)
		require.ErrorIs(t, err, commands.ErrTailorNameIsRequired)
	})

	t.Run("should fail with unconstructed tailor id", func(t *testing.T) {
		_, err := commands.NewRegisterTailorCommand(kernel.UUID{}, "Noor Tailors", nil, nil, false)
		require.Error(t, err)
	})

	t.Run("should fail with unconstructed location", func(t *testing.T) {
		_, err := commands.NewRegisterTailorCommand(kernel.NewUUID(), "Noor Tailors",
			&kernel.GeoPoint{}, nil, false)
		require.Error(t, err)
	})
}

func TestRegisterTailorCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.RegisterTailorCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterTailorCommandIsNotConstructed)
}
