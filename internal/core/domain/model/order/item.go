package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one booked service within an order. Its total is either the stored
// amount or, when none is stored, quantity × the catalog unit price at read time.
type Item struct {
	id            int64
	serviceID     int64
	quantity      int
	totalAmount   *decimal.Decimal
	isConstructed bool
}

// NewItem creates an item that has not been persisted yet.
// serviceID must be positive and quantity at least 1; a negative total is rejected.
func NewItem(serviceID int64, quantity int, totalAmount *decimal.Decimal) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setServiceID(serviceID),
		item.setQuantity(quantity),
		item.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds a persisted item.
func RestoreItem(id, serviceID int64, quantity int, totalAmount *decimal.Decimal) (*Item, error) {
	item, err := NewItem(serviceID, quantity, totalAmount)
	if err != nil {
		return nil, err
	}
	item.id = id
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID is zero until the item is persisted.
func (i *Item) ID() int64 {
	return i.id
}

func (i *Item) ServiceID() int64 {
	return i.serviceID
}

func (i *Item) Quantity() int {
	return i.quantity
}

// TotalAmount returns the stored total, or nil when it is derived from the unit price.
func (i *Item) TotalAmount() *decimal.Decimal {
	if i.totalAmount == nil {
		return nil
	}
	v := *i.totalAmount
	return &v
}

// ResolvedTotal returns the stored total or quantity × unitPrice.
func (i *Item) ResolvedTotal(unitPrice decimal.Decimal) decimal.Decimal {
	if i.totalAmount != nil {
		return *i.totalAmount
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) clone() *Item {
	c := *i
	c.totalAmount = i.TotalAmount()
	return &c
}

func (i *Item) setServiceID(serviceID int64) error {
	if serviceID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("serviceId", fmt.Errorf("%d is not greater than 0", serviceID))
	}
	i.serviceID = serviceID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setTotalAmount(total *decimal.Decimal) error {
	if total == nil {
		i.totalAmount = nil
		return nil
	}
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount", fmt.Errorf("%s is negative", total))
	}
	v := total.Round(2)
	i.totalAmount = &v
	return nil
}
