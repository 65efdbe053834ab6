// Package settingrepo stores key/value settings.
package settingrepo

import "time"

type SettingDTO struct {
	Key       string    `gorm:"primaryKey"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime:false"`
}

func (SettingDTO) TableName() string {
	return "settings"
}
