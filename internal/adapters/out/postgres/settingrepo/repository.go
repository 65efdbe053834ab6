package settingrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// GormSettingRepository implements ports.SettingRepository using GORM.
type GormSettingRepository struct {
	db *gorm.DB
}

func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// Get returns the stored value and whether the key exists.
func (r *GormSettingRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var dto SettingDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	return dto.Value, true, nil
}

// Upsert writes value under key in one statement. xmax is zero only for a freshly
// inserted row, which tells creation apart from an update.
func (r *GormSettingRepository) Upsert(ctx context.Context, key, value string) (bool, error) {
	var created bool
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, NOW())
		ON CONFLICT (key) DO UPDATE
			SET value = EXCLUDED.value,
				updated_at = EXCLUDED.updated_at
		RETURNING (xmax = 0)
	`, key, value).Scan(&created).Error
	if err != nil {
		return false, err
	}

	return created, nil
}
