package commands_test

import (
	"testing"

	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewOrderID()

	cmd, err := commands.NewCancelOrderCommand(id)

	require.NoError(t, err)
	assert.True(t, cmd.OrderID().IsEqual(id))
	assert.NoError(t, cmd.Validate())
}

func TestNewCancelOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.OrderID{} // zero value, should trigger validation error
	_, err := commands.NewCancelOrderCommand(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrOrderIDIsNotConstructed)
}

func TestCancelOrderCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.CancelOrderCommand{} // not constructed properly
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
}
