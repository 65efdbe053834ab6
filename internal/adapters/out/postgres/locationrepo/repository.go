package locationrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/location"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLocationRepository implements ports.LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Get retrieves a location by id.
func (r *GormLocationRepository) Get(ctx context.Context, id int64) (*location.Location, error) {
	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("store", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetEligibleForShare reads the matchable stores with FOR SHARE, so a concurrent
// deactivation blocks until the booking transaction ends.
func (r *GormLocationRepository) GetEligibleForShare(ctx context.Context) ([]*location.Location, error) {
	var dtos []LocationDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("is_active AND NOT admin_locked AND latitude IS NOT NULL AND longitude IS NOT NULL").
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	locations := make([]*location.Location, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}

	return locations, nil
}
