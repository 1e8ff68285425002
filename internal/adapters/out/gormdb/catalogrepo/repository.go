package catalogrepo

import (
	"context"

	"kirana/internal/core/domain/model/catalog"

	"gorm.io/gorm"
)

// GormCatalogRepository loads catalog items using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// LoadOrSeed returns every catalog item, inserting the default assortment
// first when the table is empty. The caller builds the in-memory catalog
// store from the result; the table is not read again after startup.
func (r *GormCatalogRepository) LoadOrSeed(ctx context.Context) ([]catalog.Item, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ItemDTO{}).Count(&count).Error; err != nil {
		return nil, err
	}

	if count == 0 {
		seed, err := seedDTOs()
		if err != nil {
			return nil, err
		}

		if err := r.db.WithContext(ctx).Create(&seed).Error; err != nil {
			return nil, err
		}
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]catalog.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
