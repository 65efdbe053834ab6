package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is a customer booking: which services, picked up from which
// address, in which window.
//
// Example:
//
//	window, _ := kernel.NewPickupWindow(start, end)
//	cmd, err := NewCreateOrderCommand(customer, 12, []ServiceSelection{{ServiceID: 3, Quantity: 2}}, window, "", false)
//	if err != nil {
//	    return fmt.Errorf("invalid booking: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer   kernel.Actor
	addressID  int64
	selections []ServiceSelection
	window     kernel.PickupWindow
	notes      string
	isExpress  bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the booking input. Repeated services are merged
// and quantities below 1 become 1.
func NewCreateOrderCommand(
	customer kernel.Actor,
	addressID int64,
	selections []ServiceSelection,
	window kernel.PickupWindow,
	notes string,
	isExpress bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes:     strings.TrimSpace(notes),
		isExpress: isExpress,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setAddressID(addressID),
		cmd.setSelections(selections),
		cmd.setWindow(window),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Customer() kernel.Actor {
	return c.customer
}

func (c CreateOrderCommand) AddressID() int64 {
	return c.addressID
}

// Selections returns the merged selections.
func (c CreateOrderCommand) Selections() []ServiceSelection {
	return slices.Clone(c.selections)
}

func (c CreateOrderCommand) Window() kernel.PickupWindow {
	return c.window
}

func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c CreateOrderCommand) IsExpress() bool {
	return c.isExpress
}

func (c *CreateOrderCommand) setCustomer(customer kernel.Actor) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	if !customer.IsCustomer() {
		return errs.NewAccessDeniedError("booking", customer.String())
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setAddressID(addressID int64) error {
	if addressID <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("addressId", fmt.Errorf("%d is not a valid id", addressID))
	}

	c.addressID = addressID
	return nil
}

func (c *CreateOrderCommand) setSelections(selections []ServiceSelection) error {
	merged, err := normalizeSelections(selections)
	if err != nil {
		return err
	}

	c.selections = merged
	return nil
}

func (c *CreateOrderCommand) setWindow(window kernel.PickupWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}

	c.window = window
	return nil
}
