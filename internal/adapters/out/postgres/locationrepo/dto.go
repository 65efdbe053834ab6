// Package locationrepo persists fulfillment locations (the stores table).
package locationrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/location"
)

// LocationDTO is the stores row. Latitude and longitude are nullable: a store
// without a coordinate exists but is never matched.
type LocationDTO struct {
	ID          int64    `gorm:"primaryKey;autoIncrement"`
	OperatorID  int64    `gorm:"not null;index"`
	Name        string   `gorm:"not null"`
	Latitude    *float64 `gorm:"type:double precision"`
	Longitude   *float64 `gorm:"type:double precision"`
	IsActive    bool     `gorm:"not null;default:true"`
	AdminLocked bool     `gorm:"not null;default:false"`
}

func (LocationDTO) TableName() string {
	return "stores"
}

// FromDomain is exported for test fixtures that seed stores directly.
func FromDomain(l *location.Location) LocationDTO {
	dto := LocationDTO{
		ID:          l.ID(),
		OperatorID:  l.OperatorID(),
		Name:        l.Name(),
		IsActive:    l.IsActive(),
		AdminLocked: l.IsAdminLocked(),
	}
	if p := l.Point(); p != nil {
		lat, lng := p.Latitude(), p.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lng
	}
	return dto
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	var point *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		p, err := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return nil, err
		}
		point = &p
	}

	return location.RestoreLocation(dto.ID, dto.OperatorID, dto.Name, point, dto.IsActive, dto.AdminLocked)
}
