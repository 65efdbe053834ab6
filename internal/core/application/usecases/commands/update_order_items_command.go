package commands

import (
	"errors"
	"slices"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateOrderItemsCommandIsNotConstructed = errors.New(
	"UpdateOrderItemsCommand must be created via NewUpdateOrderItemsCommand constructor",
)

// UpdateOrderItemsCommand is an operator editing the lines of an order at their store.
type UpdateOrderItemsCommand struct { //nolint:recvcheck //using for validation
	operator kernel.Actor
	orderID  int64
	edits    []services.ItemEdit

	guard guard.ConstructorGuard
}

func NewUpdateOrderItemsCommand(
	operator kernel.Actor,
	orderID int64,
	edits []services.ItemEdit,
) (UpdateOrderItemsCommand, error) {
	cmd := UpdateOrderItemsCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOperator(operator),
		validateOrderID(orderID),
		cmd.setEdits(edits),
	); err != nil {
		return UpdateOrderItemsCommand{}, err
	}

	cmd.orderID = orderID
	return cmd, nil
}

func (c UpdateOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderItemsCommandIsNotConstructed)
}

func (c UpdateOrderItemsCommand) Operator() kernel.Actor {
	return c.operator
}

func (c UpdateOrderItemsCommand) OrderID() int64 {
	return c.orderID
}

func (c UpdateOrderItemsCommand) Edits() []services.ItemEdit {
	return slices.Clone(c.edits)
}

// PricedServiceIDs returns the services whose current price is needed, that is
// every service edited with a positive quantity.
func (c UpdateOrderItemsCommand) PricedServiceIDs() []int64 {
	ids := make([]int64, 0, len(c.edits))
	for _, e := range c.edits {
		if e.Quantity > 0 && !slices.Contains(ids, e.ServiceID) {
			ids = append(ids, e.ServiceID)
		}
	}
	return ids
}

func (c *UpdateOrderItemsCommand) setOperator(operator kernel.Actor) error {
	if err := operator.Validate(); err != nil {
		return err
	}
	if !operator.IsOperator() {
		return errs.NewAccessDeniedError("order items", operator.String())
	}

	c.operator = operator
	return nil
}

func (c *UpdateOrderItemsCommand) setEdits(edits []services.ItemEdit) error {
	if len(edits) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	validated := make([]services.ItemEdit, 0, len(edits))
	for _, e := range edits {
		if err := e.Validate(); err != nil {
			return err
		}
		validated = append(validated, e)
	}

	c.edits = validated
	return nil
}
