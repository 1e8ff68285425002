package kernel_test

import (
	"testing"

	"kirana/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("should create a new order ID", func(t *testing.T) {
		id := kernel.NewOrderID()

		assert.NotEmpty(t, id.String())
		assert.NoError(t, id.Validate())
		assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, id.String())
	})

	t.Run("should create unique order IDs", func(t *testing.T) {
		id1 := kernel.NewOrderID()
		id2 := kernel.NewOrderID()

		assert.NotEqual(t, id1.String(), id2.String())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("should create order ID from valid string", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("ORD-3F82A1C4")

		require.NoError(t, err)
		assert.Equal(t, "ORD-3F82A1C4", id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should normalize lowercase input", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("ord-3f82a1c4")

		require.NoError(t, err)
		assert.Equal(t, "ORD-3F82A1C4", id.String())
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("  ORD-3F82A1C4 ")

		require.NoError(t, err)
		assert.Equal(t, "ORD-3F82A1C4", id.String())
	})

	t.Run("should round-trip a generated ID", func(t *testing.T) {
		generated := kernel.NewOrderID()

		parsed, err := kernel.OrderIDFromString(generated.String())

		require.NoError(t, err)
		assert.True(t, generated.IsEqual(parsed))
	})

	t.Run("should return error for invalid order ID format", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"", "invalid order ID format"},
			{"ORD-", "invalid order ID format"},
			{"ORD-12345", "invalid order ID format"},
			{"ORD-123456789", "invalid order ID format"},
			{"ORD-3F82A1CZ", "invalid order ID format"},
			{"XYZ-3F82A1C4", "invalid order ID format"},
			{"3F82A1C4", "invalid order ID format"},
		}

		for _, tc := range testCases {
			_, err := kernel.OrderIDFromString(tc.input)
			assert.Error(t, err, "expected error for input: %s", tc.input)
			assert.Contains(t, err.Error(), tc.expected)
		}
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	t.Run("should return true for equal order IDs", func(t *testing.T) {
		id1, _ := kernel.OrderIDFromString("ORD-3F82A1C4")
		id2, _ := kernel.OrderIDFromString("ord-3f82a1c4")

		assert.True(t, id1.IsEqual(id2))
		assert.True(t, id2.IsEqual(id1))
	})

	t.Run("should return false for different order IDs", func(t *testing.T) {
		id1 := kernel.NewOrderID()
		id2 := kernel.NewOrderID()

		assert.False(t, id1.IsEqual(id2))
		assert.False(t, id2.IsEqual(id1))
	})

	t.Run("should handle zero value comparison", func(t *testing.T) {
		var id1 kernel.OrderID
		var id2 kernel.OrderID
		id3 := kernel.NewOrderID()

		assert.True(t, id1.IsEqual(id2))
		assert.False(t, id1.IsEqual(id3))
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("should return nil for valid order ID", func(t *testing.T) {
		id := kernel.NewOrderID()
		assert.NoError(t, id.Validate())
	})

	t.Run("should return error for zero value order ID", func(t *testing.T) {
		var id kernel.OrderID
		err := id.Validate()

		assert.Error(t, err)
		assert.Equal(t, kernel.ErrOrderIDIsNotConstructed, err)
	})
}
