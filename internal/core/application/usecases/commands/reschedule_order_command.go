package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRescheduleOrderCommandIsNotConstructed = errors.New(
	"RescheduleOrderCommand must be created via NewRescheduleOrderCommand constructor",
)

// RescheduleOrderCommand moves the pickup window of a customer's own order.
type RescheduleOrderCommand struct { //nolint:recvcheck //using for validation
	customer kernel.Actor
	orderID  int64
	window   kernel.PickupWindow

	guard guard.ConstructorGuard
}

func NewRescheduleOrderCommand(
	customer kernel.Actor,
	orderID int64,
	window kernel.PickupWindow,
) (RescheduleOrderCommand, error) {
	if err := errors.Join(customer.Validate(), validateOrderID(orderID), window.Validate()); err != nil {
		return RescheduleOrderCommand{}, err
	}

	return RescheduleOrderCommand{
		customer: customer,
		orderID:  orderID,
		window:   window,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RescheduleOrderCommand) Validate() error {
	return c.guard.Validate(ErrRescheduleOrderCommandIsNotConstructed)
}

func (c RescheduleOrderCommand) Customer() kernel.Actor {
	return c.customer
}

func (c RescheduleOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c RescheduleOrderCommand) Window() kernel.PickupWindow {
	return c.window
}
