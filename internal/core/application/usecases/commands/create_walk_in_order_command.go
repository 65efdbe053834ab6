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

var ErrCreateWalkInOrderCommandIsNotConstructed = errors.New(
	"CreateWalkInOrderCommand must be created via NewCreateWalkInOrderCommand constructor",
)

// CreateWalkInOrderCommand records an order handed over at the store counter.
// The address is optional; when given it must belong to the customer.
type CreateWalkInOrderCommand struct { //nolint:recvcheck //using for validation
	operator   kernel.Actor
	locationID int64
	customerID int64
	addressID  *int64
	selections []ServiceSelection
	notes      string
	isExpress  bool

	guard guard.ConstructorGuard
}

func NewCreateWalkInOrderCommand(
	operator kernel.Actor,
	locationID, customerID int64,
	addressID *int64,
	selections []ServiceSelection,
	notes string,
	isExpress bool,
) (CreateWalkInOrderCommand, error) {
	cmd := CreateWalkInOrderCommand{
		notes:     strings.TrimSpace(notes),
		isExpress: isExpress,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOperator(operator),
		cmd.setLocationID(locationID),
		cmd.setCustomerID(customerID),
		cmd.setAddressID(addressID),
		cmd.setSelections(selections),
	); err != nil {
		return CreateWalkInOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateWalkInOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWalkInOrderCommandIsNotConstructed)
}

func (c CreateWalkInOrderCommand) Operator() kernel.Actor {
	return c.operator
}

func (c CreateWalkInOrderCommand) LocationID() int64 {
	return c.locationID
}

func (c CreateWalkInOrderCommand) CustomerID() int64 {
	return c.customerID
}

// AddressID returns nil when no address was given.
func (c CreateWalkInOrderCommand) AddressID() *int64 {
	if c.addressID == nil {
		return nil
	}
	id := *c.addressID
	return &id
}

func (c CreateWalkInOrderCommand) Selections() []ServiceSelection {
	return slices.Clone(c.selections)
}

func (c CreateWalkInOrderCommand) Notes() string {
	return c.notes
}

func (c CreateWalkInOrderCommand) IsExpress() bool {
	return c.isExpress
}

func (c *CreateWalkInOrderCommand) setOperator(operator kernel.Actor) error {
	if err := operator.Validate(); err != nil {
		return err
	}
	if !operator.IsOperator() {
		return errs.NewAccessDeniedError("walk-in order", operator.String())
	}

	c.operator = operator
	return nil
}

func (c *CreateWalkInOrderCommand) setLocationID(locationID int64) error {
	if locationID <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("locationId", fmt.Errorf("%d is not a valid id", locationID))
	}

	c.locationID = locationID
	return nil
}

func (c *CreateWalkInOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsRequiredErrorWithCause("customerId", fmt.Errorf("%d is not a valid id", customerID))
	}

	c.customerID = customerID
	return nil
}

func (c *CreateWalkInOrderCommand) setAddressID(addressID *int64) error {
	if addressID == nil {
		return nil
	}
	if *addressID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("addressId", fmt.Errorf("%d is not a valid id", *addressID))
	}

	id := *addressID
	c.addressID = &id
	return nil
}

func (c *CreateWalkInOrderCommand) setSelections(selections []ServiceSelection) error {
	merged, err := normalizeSelections(selections)
	if err != nil {
		return err
	}

	c.selections = merged
	return nil
}
