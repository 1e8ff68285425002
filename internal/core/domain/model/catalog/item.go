package catalog

import (
	"errors"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/pkg/errs"
	"kirana/internal/pkg/guard"
)

// ErrItemIsNotConstructed indicates that an Item was not properly initialized
// through the NewItem constructor function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single product in the grocery catalog. Items are loaded once at
// startup and never change afterwards; orders snapshot the name and price
// into their own lines, so later catalog edits never touch placed orders.
//
// Key business rules:
//   - Must be constructed through NewItem constructor
//   - ID, name and category must be non-empty
//   - Price must be a constructed, non-negative Price
//   - Brand, size and tags are optional descriptive attributes
type Item struct {
	// id uniquely identifies the item within the catalog
	id string

	// name is the display name shown to shoppers
	name string

	// category groups related items (dairy, staples, snacks)
	category string

	// price is the current per-unit price
	price kernel.Price

	// brand is the manufacturer name, if any
	brand string

	// size is the pack size description, if any
	size string

	// tags are search keywords attached to the item
	tags []string

	// guard ensures the item was properly initialized
	guard guard.ConstructorGuard
}

// NewItem creates a new catalog item with validation.
// This is the only way to create a valid Item instance.
func NewItem(id, name, category string, price kernel.Price, brand, size string, tags []string) (Item, error) {
	item := Item{
		brand: brand,
		size:  size,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setCategory(category),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	item.tags = make([]string, len(tags))
	copy(item.tags, tags)

	return item, nil
}

// Validate checks if the Item was properly constructed using NewItem.
// The zero value of Item is invalid and will fail this validation.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's catalog identifier.
func (i Item) ID() string {
	return i.id
}

// Name returns the item's display name.
func (i Item) Name() string {
	return i.name
}

// Category returns the item's category.
func (i Item) Category() string {
	return i.category
}

// Price returns the item's current per-unit price.
func (i Item) Price() kernel.Price {
	return i.price
}

// Brand returns the item's brand, or an empty string when unbranded.
func (i Item) Brand() string {
	return i.brand
}

// Size returns the item's pack size description, or an empty string.
func (i Item) Size() string {
	return i.size
}

// Tags returns the item's search keywords.
// The returned slice is a copy to prevent external modification.
func (i Item) Tags() []string {
	out := make([]string, len(i.tags))
	copy(out, i.tags)
	return out
}

// setID sets the catalog identifier with validation.
// This is a private method used only during construction.
func (i *Item) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("item id")
	}

	i.id = id
	return nil
}

// setName sets the display name with validation.
// This is a private method used only during construction.
func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}

	i.name = name
	return nil
}

// setCategory sets the category with validation.
// This is a private method used only during construction.
func (i *Item) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("item category")
	}

	i.category = category
	return nil
}

// setPrice sets the per-unit price with validation.
// This is a private method used only during construction.
func (i *Item) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	i.price = price
	return nil
}
