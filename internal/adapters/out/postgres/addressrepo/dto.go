// Package addressrepo reads customer addresses.
package addressrepo

import (
	"fulfillment/internal/core/domain/model/address"
	"fulfillment/internal/core/domain/model/kernel"
)

type AddressDTO struct {
	ID          int64    `gorm:"primaryKey;autoIncrement"`
	CustomerID  int64    `gorm:"not null;index"`
	AddressLine string   `gorm:"not null"`
	Latitude    *float64 `gorm:"type:double precision"`
	Longitude   *float64 `gorm:"type:double precision"`
}

func (AddressDTO) TableName() string {
	return "addresses"
}

func FromDomain(a *address.Address) AddressDTO {
	dto := AddressDTO{
		ID:          a.ID(),
		CustomerID:  a.CustomerID(),
		AddressLine: a.Line(),
	}
	if p := a.Point(); p != nil {
		lat, lng := p.Latitude(), p.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lng
	}
	return dto
}

func toDomain(dto AddressDTO) (*address.Address, error) {
	var point *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		p, err := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return nil, err
		}
		point = &p
	}

	return address.RestoreAddress(dto.ID, dto.CustomerID, dto.AddressLine, point)
}
