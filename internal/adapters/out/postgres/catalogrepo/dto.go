// Package catalogrepo reads the service catalog.
package catalogrepo

import (
	"fulfillment/internal/core/domain/model/catalog"

	"github.com/shopspring/decimal"
)

type ServiceDTO struct {
	ID       int64           `gorm:"primaryKey;autoIncrement"`
	Name     string          `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	IsActive bool            `gorm:"not null;default:true"`
}

func (ServiceDTO) TableName() string {
	return "services"
}

func FromDomain(s *catalog.Service) ServiceDTO {
	return ServiceDTO{
		ID:       s.ID(),
		Name:     s.Name(),
		Price:    s.Price(),
		IsActive: s.IsActive(),
	}
}

func toDomain(dto ServiceDTO) (*catalog.Service, error) {
	return catalog.RestoreService(dto.ID, dto.Name, dto.Price, dto.IsActive)
}
