package catalog_test

import (
	"testing"

	"kirana/internal/core/domain/model/catalog"
	"kirana/internal/core/domain/model/kernel"
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

func createTestItem(t *testing.T, id, name string, price string, tags ...string) catalog.Item {
	t.Helper()

	item, err := catalog.NewItem(id, name, "staples", createTestPrice(t, price), "", "", tags)
	require.NoError(t, err)

	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should create item with valid parameters", func(t *testing.T) {
		price := createTestPrice(t, "45.00")

		item, err := catalog.NewItem(
			"bread-001", "Whole Wheat Bread", "bakery", price,
			"Britannia", "400g", []string{"bread", "breakfast"},
		)

		require.NoError(t, err)
		assert.Equal(t, "bread-001", item.ID())
		assert.Equal(t, "Whole Wheat Bread", item.Name())
		assert.Equal(t, "bakery", item.Category())
		assert.True(t, price.IsEqual(item.Price()))
		assert.Equal(t, "Britannia", item.Brand())
		assert.Equal(t, "400g", item.Size())
		assert.Equal(t, []string{"bread", "breakfast"}, item.Tags())
		assert.NoError(t, item.Validate())
	})

	t.Run("should allow empty brand, size and tags", func(t *testing.T) {
		item, err := catalog.NewItem("salt-001", "Iodised Salt", "staples", createTestPrice(t, "22.00"), "", "", nil)

		require.NoError(t, err)
		assert.Empty(t, item.Brand())
		assert.Empty(t, item.Size())
		assert.Empty(t, item.Tags())
	})

	t.Run("should return error for empty id", func(t *testing.T) {
		_, err := catalog.NewItem("", "Iodised Salt", "staples", createTestPrice(t, "22.00"), "", "", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "item id")
	})

	t.Run("should return error for empty name", func(t *testing.T) {
		_, err := catalog.NewItem("salt-001", "", "staples", createTestPrice(t, "22.00"), "", "", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "item name")
	})

	t.Run("should return error for empty category", func(t *testing.T) {
		_, err := catalog.NewItem("salt-001", "Iodised Salt", "", createTestPrice(t, "22.00"), "", "", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "item category")
	})

	t.Run("should return error for unconstructed price", func(t *testing.T) {
		_, err := catalog.NewItem("salt-001", "Iodised Salt", "staples", kernel.Price{}, "", "", nil)

		require.Error(t, err)
	})

	t.Run("should copy tags on construction", func(t *testing.T) {
		tags := []string{"bread"}

		item, err := catalog.NewItem("bread-001", "Whole Wheat Bread", "bakery", createTestPrice(t, "45.00"), "", "", tags)
		require.NoError(t, err)

		tags[0] = "changed"

		assert.Equal(t, []string{"bread"}, item.Tags())
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should return error for zero value item", func(t *testing.T) {
		var item catalog.Item

		err := item.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrItemIsNotConstructed)
	})
}
