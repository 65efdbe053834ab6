// Package address holds the customer address book entries the engine reads when booking.
package address

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

var (
	ErrAddressIsNotConstructed = errors.New("Address must be created via RestoreAddress constructor")
	// ErrAddressHasNoCoordinate is returned when an address cannot be matched to a location.
	ErrAddressHasNoCoordinate = errs.NewValueIsRequiredError("address coordinate")
)

// Address is a customer's saved address. The coordinate may be unknown.
type Address struct {
	id            int64
	customerID    int64
	line          string
	point         *kernel.GeoPoint
	isConstructed bool
}

func RestoreAddress(id, customerID int64, line string, point *kernel.GeoPoint) (*Address, error) {
	a := &Address{
		line:          strings.TrimSpace(line),
		isConstructed: true,
	}

	var idErr, customerErr, pointErr error
	if id <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("address id", fmt.Errorf("%d is not greater than 0", id))
	}
	if customerID <= 0 {
		customerErr = errs.NewValueIsInvalidErrorWithCause("customer id", fmt.Errorf("%d is not greater than 0", customerID))
	}
	if point != nil {
		pointErr = point.Validate()
	}
	if err := errors.Join(idErr, customerErr, pointErr); err != nil {
		return nil, err
	}

	a.id = id
	a.customerID = customerID
	if point != nil {
		p := *point
		a.point = &p
	}
	return a, nil
}

func (a *Address) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

func (a *Address) ID() int64 {
	return a.id
}

func (a *Address) CustomerID() int64 {
	return a.customerID
}

func (a *Address) Line() string {
	return a.line
}

// Point returns the coordinate, or nil when the address was saved without one.
func (a *Address) Point() *kernel.GeoPoint {
	if a.point == nil {
		return nil
	}
	p := *a.point
	return &p
}

func (a *Address) BelongsTo(customerID int64) bool {
	return a.customerID == customerID
}

// Snapshot copies the address into the delivery address carried by an order.
func (a *Address) Snapshot() (order.DeliveryAddress, error) {
	if a.point == nil {
		return order.DeliveryAddress{}, ErrAddressHasNoCoordinate
	}
	return order.NewDeliveryAddress(a.id, a.line, *a.point)
}
