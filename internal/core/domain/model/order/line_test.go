package order_test

import (
	"testing"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
	"kirana/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPrice(t *testing.T, value string) kernel.Price {
	t.Helper()

	price, err := kernel.PriceFromString(value)
	require.NoError(t, err)

	return price
}

func TestNewLine(t *testing.T) {
	t.Run("should create line with valid parameters", func(t *testing.T) {
		unitPrice := createTestPrice(t, "45.00")

		line, err := order.NewLine("bread-001", "Whole Wheat Bread", unitPrice, 2, "sliced")

		require.NoError(t, err)
		assert.Equal(t, "bread-001", line.ItemID())
		assert.Equal(t, "Whole Wheat Bread", line.Name())
		assert.True(t, unitPrice.IsEqual(line.UnitPrice()))
		assert.Equal(t, 2, line.Quantity())
		assert.Equal(t, "sliced", line.Notes())
	})

	t.Run("should allow empty notes", func(t *testing.T) {
		line, err := order.NewLine("bread-001", "Whole Wheat Bread", createTestPrice(t, "45.00"), 1, "")

		require.NoError(t, err)
		assert.Empty(t, line.Notes())
	})

	t.Run("should return error for empty item id", func(t *testing.T) {
		_, err := order.NewLine("", "Whole Wheat Bread", createTestPrice(t, "45.00"), 1, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "item id")
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		_, err := order.NewLine("bread-001", "", createTestPrice(t, "45.00"), 1, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "item name")
	})

	t.Run("should return error for unconstructed unit price", func(t *testing.T) {
		_, err := order.NewLine("bread-001", "Whole Wheat Bread", kernel.Price{}, 1, "")

		require.Error(t, err)
	})

	t.Run("should return error for non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1, -10} {
			_, err := order.NewLine("bread-001", "Whole Wheat Bread", createTestPrice(t, "45.00"), quantity, "")

			require.Error(t, err, "quantity: %d", quantity)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should collect all validation errors", func(t *testing.T) {
		_, err := order.NewLine("", "", kernel.Price{}, 0, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "item id")
		assert.Contains(t, err.Error(), "item name")
		assert.Contains(t, err.Error(), "quantity")
	})
}

func TestLine_Total(t *testing.T) {
	t.Run("should multiply unit price by quantity", func(t *testing.T) {
		line, err := order.NewLine("bread-001", "Whole Wheat Bread", createTestPrice(t, "45.00"), 3, "")
		require.NoError(t, err)

		total, err := line.Total()

		require.NoError(t, err)
		assert.Equal(t, "135.00", total.String())
	})

	t.Run("should keep two decimal places exact", func(t *testing.T) {
		line, err := order.NewLine("eggs-001", "Farm Eggs 6pk", createTestPrice(t, "40.50"), 4, "")
		require.NoError(t, err)

		total, err := line.Total()

		require.NoError(t, err)
		assert.Equal(t, "162.00", total.String())
	})
}

func TestLine_Validate(t *testing.T) {
	t.Run("should validate constructed line", func(t *testing.T) {
		line, err := order.NewLine("bread-001", "Whole Wheat Bread", createTestPrice(t, "45.00"), 1, "")
		require.NoError(t, err)

		assert.NoError(t, line.Validate())
	})

	t.Run("should return error for zero value line", func(t *testing.T) {
		var line order.Line

		err := line.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrLineIsNotConstructed)
	})
}
