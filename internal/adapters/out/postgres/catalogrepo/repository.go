package catalogrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/catalog"

	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetByIDs returns the services found among ids. Prices are read as they are now.
func (r *GormCatalogRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*catalog.Service, error) {
	services := make(map[int64]*catalog.Service, len(ids))
	if len(ids) == 0 {
		return services, nil
	}

	var dtos []ServiceDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		services[s.ID()] = s
	}

	return services, nil
}
