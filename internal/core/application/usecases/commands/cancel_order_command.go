package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand is a customer cancelling their own order.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	customer kernel.Actor
	orderID  int64

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(customer kernel.Actor, orderID int64) (CancelOrderCommand, error) {
	if err := errors.Join(customer.Validate(), validateOrderID(orderID)); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		customer: customer,
		orderID:  orderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) Customer() kernel.Actor {
	return c.customer
}

func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}
