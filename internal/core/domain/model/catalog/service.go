// Package catalog holds the read-only service catalog used to price order items.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrServiceIsNotConstructed = errors.New("Service must be created via RestoreService constructor")

// Service is a bookable catalog entry with its current unit price.
type Service struct {
	id            int64
	name          string
	price         decimal.Decimal
	isActive      bool
	isConstructed bool
}

func RestoreService(id int64, name string, price decimal.Decimal, isActive bool) (*Service, error) {
	s := &Service{
		name:          strings.TrimSpace(name),
		isActive:      isActive,
		isConstructed: true,
	}

	var idErr, priceErr error
	if id <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("service id", fmt.Errorf("%d is not greater than 0", id))
	}
	if price.IsNegative() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	if err := errors.Join(idErr, priceErr); err != nil {
		return nil, err
	}

	s.id = id
	s.price = price
	return s, nil
}

func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}
	return nil
}

func (s *Service) ID() int64 {
	return s.id
}

func (s *Service) Name() string {
	return s.name
}

// Price is the unit price at the moment the service was read.
func (s *Service) Price() decimal.Decimal {
	return s.price
}

func (s *Service) IsActive() bool {
	return s.isActive
}

// NotFound builds the error reported for an unknown service id.
func NotFound(id int64) error {
	return errs.NewObjectNotFoundErrorWithCause("service", id, fmt.Errorf("Service with id %d not found", id))
}
