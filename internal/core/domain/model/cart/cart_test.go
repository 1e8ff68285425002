package cart_test

import (
	"testing"

	"kirana/internal/core/domain/model/cart"
	"kirana/internal/core/domain/model/catalog"
	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestItem(t *testing.T, id, name, price string) catalog.Item {
	t.Helper()

	priceValue, err := kernel.PriceFromString(price)
	require.NoError(t, err)

	item, err := catalog.NewItem(id, name, "staples", priceValue, "", "", nil)
	require.NoError(t, err)

	return item
}

func TestCart_Add(t *testing.T) {
	t.Run("should add item with captured name and price", func(t *testing.T) {
		shoppingCart := cart.NewCart()
		bread := createTestItem(t, "bread-001", "Whole Wheat Bread", "45.00")

		err := shoppingCart.Add(bread, 2, "sliced")

		require.NoError(t, err)
		lines := shoppingCart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "bread-001", lines[0].ItemID())
		assert.Equal(t, "Whole Wheat Bread", lines[0].Name())
		assert.Equal(t, "45.00", lines[0].UnitPrice().String())
		assert.Equal(t, 2, lines[0].Quantity())
		assert.Equal(t, "sliced", lines[0].Notes())
	})

	t.Run("should accumulate quantity for the same item", func(t *testing.T) {
		shoppingCart := cart.NewCart()
		bread := createTestItem(t, "bread-001", "Whole Wheat Bread", "45.00")

		require.NoError(t, shoppingCart.Add(bread, 2, ""))
		require.NoError(t, shoppingCart.Add(bread, 3, ""))

		lines := shoppingCart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity())
	})

	t.Run("should overwrite notes only when new notes are non-empty", func(t *testing.T) {
		shoppingCart := cart.NewCart()
		bread := createTestItem(t, "bread-001", "Whole Wheat Bread", "45.00")

		require.NoError(t, shoppingCart.Add(bread, 1, "sliced"))
		require.NoError(t, shoppingCart.Add(bread, 1, ""))
		assert.Equal(t, "sliced", shoppingCart.Lines()[0].Notes())

		require.NoError(t, shoppingCart.Add(bread, 1, "unsliced"))
		assert.Equal(t, "unsliced", shoppingCart.Lines()[0].Notes())
	})

	t.Run("should keep insertion order across items", func(t *testing.T) {
		shoppingCart := cart.NewCart()

		require.NoError(t, shoppingCart.Add(createTestItem(t, "milk-001", "Toned Milk", "27.00"), 1, ""))
		require.NoError(t, shoppingCart.Add(createTestItem(t, "bread-001", "Whole Wheat Bread", "45.00"), 1, ""))
		require.NoError(t, shoppingCart.Add(createTestItem(t, "eggs-001", "Farm Eggs 6pk", "40.00"), 1, ""))

		lines := shoppingCart.Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, "milk-001", lines[0].ItemID())
		assert.Equal(t, "bread-001", lines[1].ItemID())
		assert.Equal(t, "eggs-001", lines[2].ItemID())
	})

	t.Run("should return error for zero value item", func(t *testing.T) {
		shoppingCart := cart.NewCart()

		err := shoppingCart.Add(catalog.Item{}, 1, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrItemIsNotConstructed)
	})

	t.Run("should return error for non-positive quantity", func(t *testing.T) {
		shoppingCart := cart.NewCart()
		bread := createTestItem(t, "bread-001", "Whole Wheat Bread", "45.00")

		for _, quantity := range []int{0, -1} {
			err := shoppingCart.Add(bread, quantity, "")

			require.Error(t, err, "quantity: %d", quantity)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}

		assert.True(t, shoppingCart.IsEmpty())
	})
}

func TestCart_Remove(t *testing.T) {
	t.Run("should remove existing line and return it", func(t *testing.T) {
		shoppingCart := cart.NewCart()
		require.NoError(t, shoppingCart.Add(createTestItem(t, "bread-001", "Whole Wheat Bread", "45.00"), 1, ""))
		require.NoError(t, shoppingCart.Add(createTestItem(t, "eggs-001", "Farm Eggs 6pk", "40.00"), 1, ""))

		line, removed := shoppingCart.Remove("bread-001")

		assert.True(t, removed)
		assert.Equal(t, "Whole Wheat Bread", line.Name())
		lines := shoppingCart.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, "eggs-001", lines[0].ItemID())
	})

	t.Run("should be a no-op for absent item", func(t *testing.T) {
		shoppingCart := cart.NewCart()
		require.NoError(t, shoppingCart.Add(createTestItem(t, "bread-001", "Whole Wheat Bread", "45.00"), 1, ""))

		_, removed := shoppingCart.Remove("caviar-001")

		assert.False(t, removed)
		assert.Len(t, shoppingCart.Lines(), 1)
	})
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("should replace quantity of existing line", func(t *testing.T) {
		shoppingCart := cart.NewCart()
		require.NoError(t, shoppingCart.Add(createTestItem(t, "bread-001", "Whole Wheat Bread", "45.00"), 2, ""))

		line, found := shoppingCart.SetQuantity("bread-001", 7)

		assert.True(t, found)
		assert.Equal(t, 7, line.Quantity())
		assert.Equal(t, 7, shoppingCart.Lines()[0].Quantity())
	})

	t.Run("should remove line when quantity drops below one", func(t *testing.T) {
		shoppingCart := cart.NewCart()

		for _, quantity := range []int{0, -3} {
			require.NoError(t, shoppingCart.Add(createTestItem(t, "bread-001", "Whole Wheat Bread", "45.00"), 2, ""))

			line, found := shoppingCart.SetQuantity("bread-001", quantity)

			assert.True(t, found, "quantity: %d", quantity)
			assert.Equal(t, "Whole Wheat Bread", line.Name())
			assert.True(t, shoppingCart.IsEmpty())
		}
	})

	t.Run("should report absent item", func(t *testing.T) {
		shoppingCart := cart.NewCart()

		_, found := shoppingCart.SetQuantity("caviar-001", 3)
		assert.False(t, found)

		_, found = shoppingCart.SetQuantity("caviar-001", 0)
		assert.False(t, found)
	})
}

func TestCart_Total(t *testing.T) {
	t.Run("should sum line totals", func(t *testing.T) {
		shoppingCart := cart.NewCart()
		require.NoError(t, shoppingCart.Add(createTestItem(t, "bread-001", "Whole Wheat Bread", "45.00"), 2, ""))
		require.NoError(t, shoppingCart.Add(createTestItem(t, "eggs-001", "Farm Eggs 6pk", "40.00"), 1, ""))

		total, err := shoppingCart.Total()

		require.NoError(t, err)
		assert.Equal(t, "130.00", total.String())
	})

	t.Run("should recompute after mutations", func(t *testing.T) {
		shoppingCart := cart.NewCart()
		require.NoError(t, shoppingCart.Add(createTestItem(t, "bread-001", "Whole Wheat Bread", "45.00"), 2, ""))

		shoppingCart.SetQuantity("bread-001", 1)

		total, err := shoppingCart.Total()
		require.NoError(t, err)
		assert.Equal(t, "45.00", total.String())
	})

	t.Run("should be zero for empty cart", func(t *testing.T) {
		total, err := cart.NewCart().Total()

		require.NoError(t, err)
		assert.Equal(t, "0.00", total.String())
	})
}

func TestCart_Clear(t *testing.T) {
	t.Run("should remove every line", func(t *testing.T) {
		shoppingCart := cart.NewCart()
		require.NoError(t, shoppingCart.Add(createTestItem(t, "bread-001", "Whole Wheat Bread", "45.00"), 2, ""))
		require.NoError(t, shoppingCart.Add(createTestItem(t, "eggs-001", "Farm Eggs 6pk", "40.00"), 1, ""))

		shoppingCart.Clear()

		assert.True(t, shoppingCart.IsEmpty())
		assert.Empty(t, shoppingCart.Lines())
	})
}

func TestCart_Lines(t *testing.T) {
	t.Run("should return a copy of the lines", func(t *testing.T) {
		shoppingCart := cart.NewCart()
		require.NoError(t, shoppingCart.Add(createTestItem(t, "bread-001", "Whole Wheat Bread", "45.00"), 2, ""))

		lines := shoppingCart.Lines()
		lines[0] = cart.Line{}

		assert.Equal(t, "bread-001", shoppingCart.Lines()[0].ItemID())
	})
}
