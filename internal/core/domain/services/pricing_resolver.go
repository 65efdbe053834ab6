package services

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ItemEdit is one operator change to an order line.
// Quantity 0 removes the line; TotalAmount, when set, overrides the computed total.
type ItemEdit struct {
	ServiceID   int64
	Quantity    int
	TotalAmount *decimal.Decimal
}

// Validate checks the edit on its own, without the order or the catalog.
func (e ItemEdit) Validate() error {
	if e.ServiceID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("serviceId",
			fmt.Errorf("each item must include a valid serviceId, got %d", e.ServiceID))
	}
	if e.Quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("item quantity must be zero or a positive number, got %d", e.Quantity))
	}
	if e.TotalAmount != nil && e.TotalAmount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%s is negative", e.TotalAmount))
	}
	return nil
}

// ItemChanges lists the services whose lines were written or deleted.
type ItemChanges struct {
	Upserted []int64
	Removed  []int64
}

// IsEmpty reports whether nothing changed.
func (c ItemChanges) IsEmpty() bool {
	return len(c.Upserted) == 0 && len(c.Removed) == 0
}

// PricingResolver applies operator item edits to an order.
//
// Business rules:
//   - Edits are rejected once the order is delivered or cancelled
//   - Quantity 0 deletes the line; deleting an absent line is a no-op
//   - A positive quantity creates or updates the line; its total is the override
//     when given, otherwise quantity × the unit price read now
//   - Either every edit applies or none does
type PricingResolver struct{}

func NewPricingResolver() PricingResolver {
	return PricingResolver{}
}

// Reconcile applies edits to o. services must hold every service referenced by an
// edit with a positive quantity, keyed by id, with its current price.
func (r PricingResolver) Reconcile(
	o *order.Order,
	edits []ItemEdit,
	services map[int64]*catalog.Service,
	at time.Time,
) (ItemChanges, error) {
	if err := o.Validate(); err != nil {
		return ItemChanges{}, err
	}
	if o.Status().IsTerminal() {
		return ItemChanges{}, errs.NewInvalidTransitionError(string(o.Status()), "",
			"Order items cannot be edited once the order is delivered or cancelled")
	}

	for _, edit := range edits {
		if err := edit.Validate(); err != nil {
			return ItemChanges{}, err
		}
		if edit.Quantity > 0 && services[edit.ServiceID] == nil {
			return ItemChanges{}, catalog.NotFound(edit.ServiceID)
		}
	}

	var changes ItemChanges
	for _, edit := range edits {
		if edit.Quantity == 0 {
			removed, err := o.RemoveItem(edit.ServiceID, at)
			if err != nil {
				return ItemChanges{}, err
			}
			if removed {
				changes.Removed = append(changes.Removed, edit.ServiceID)
			}
			continue
		}

		total := ResolveTotal(edit.Quantity, edit.TotalAmount, services[edit.ServiceID].Price())
		if err := o.UpsertItem(edit.ServiceID, edit.Quantity, &total, at); err != nil {
			return ItemChanges{}, err
		}
		changes.Upserted = append(changes.Upserted, edit.ServiceID)
	}

	return changes, nil
}

// ResolveTotal returns override when set, otherwise quantity × unitPrice, rounded to cents.
func ResolveTotal(quantity int, override *decimal.Decimal, unitPrice decimal.Decimal) decimal.Decimal {
	if override != nil {
		return override.Round(2)
	}
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
