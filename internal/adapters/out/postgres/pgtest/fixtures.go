package pgtest

import (
	"fmt"

	"fulfillment/internal/adapters/out/postgres/addressrepo"
	"fulfillment/internal/adapters/out/postgres/catalogrepo"
	"fulfillment/internal/adapters/out/postgres/locationrepo"

	"github.com/shopspring/decimal"
)

// Store is an active, unlocked store at (lat, lng).
func Store(id, operatorID int64, lat, lng float64) *locationrepo.LocationDTO {
	return &locationrepo.LocationDTO{
		ID:         id,
		OperatorID: operatorID,
		Name:       fmt.Sprintf("Store %d", id),
		Latitude:   &lat,
		Longitude:  &lng,
		IsActive:   true,
	}
}

// Service is an active catalog entry with the given price.
func Service(id int64, price string) *catalogrepo.ServiceDTO {
	return &catalogrepo.ServiceDTO{
		ID:       id,
		Name:     fmt.Sprintf("Service %d", id),
		Price:    decimal.RequireFromString(price),
		IsActive: true,
	}
}

// Address is a customer address at (lat, lng).
func Address(id, customerID int64, lat, lng float64) *addressrepo.AddressDTO {
	return &addressrepo.AddressDTO{
		ID:          id,
		CustomerID:  customerID,
		AddressLine: fmt.Sprintf("%d Main Road", id),
		Latitude:    &lat,
		Longitude:   &lng,
	}
}

// Seed inserts rows in order and stops at the first error.
func (d *Database) Seed(rows ...any) error {
	for _, row := range rows {
		if err := d.DB.Create(row).Error; err != nil {
			return err
		}
	}
	return nil
}
