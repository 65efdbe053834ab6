package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	customer       kernel.Actor
	notificationID int64

	guard guard.ConstructorGuard
}

func NewMarkNotificationReadCommand(customer kernel.Actor, notificationID int64) (MarkNotificationReadCommand, error) {
	var idErr error
	if notificationID <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("notificationId", fmt.Errorf("%d is not a valid id", notificationID))
	}
	if err := errors.Join(customer.Validate(), idErr); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return MarkNotificationReadCommand{
		customer:       customer,
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

func (c MarkNotificationReadCommand) Customer() kernel.Actor {
	return c.customer
}

func (c MarkNotificationReadCommand) NotificationID() int64 {
	return c.notificationID
}
