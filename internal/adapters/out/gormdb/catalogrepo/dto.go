// Package catalogrepo loads the product catalog from the database and seeds
// the default assortment on first start. The catalog is read-only at runtime:
// rows are loaded once during composition and served from memory afterwards.
package catalogrepo

import (
	"encoding/json"
	"fmt"

	"kirana/internal/core/domain/model/catalog"
	"kirana/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for catalog items.
// Tags are stored as a JSON array in a text column; the catalog is small and
// loaded whole, so tags never need their own table.
type ItemDTO struct {
	ID       string          `gorm:"type:varchar(64);primaryKey"`
	Name     string          `gorm:"index"`
	Category string          `gorm:"index"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2)"`
	Brand    string
	Size     string
	Tags     string
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "catalog"
}

// toDomain converts a database row to a catalog item.
func toDomain(dto ItemDTO) (catalog.Item, error) {
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return catalog.Item{}, err
	}

	var tags []string
	if dto.Tags != "" {
		if err := json.Unmarshal([]byte(dto.Tags), &tags); err != nil {
			return catalog.Item{}, fmt.Errorf("catalog item %s has malformed tags: %w", dto.ID, err)
		}
	}

	return catalog.NewItem(dto.ID, dto.Name, dto.Category, price, dto.Brand, dto.Size, tags)
}
