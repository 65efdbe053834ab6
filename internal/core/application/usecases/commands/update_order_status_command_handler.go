package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/location"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// OrderChangeResult is the order after a status change and whether its status moved.
type OrderChangeResult struct {
	Order   *order.Order
	Changed bool
}

// UpdateOrderStatusCommandHandler applies a status change under a row lock on the order.
// A repeated transition to the current status changes nothing and sends no notice;
// notes are still appended.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	machine    services.StatusMachine
	notifier   Notifier
	clock      kernel.Clock
}

func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
	clock kernel.Clock,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		machine:    services.NewStatusMachine(),
		notifier:   notifier,
		clock:      clock,
	}
}

func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (OrderChangeResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderChangeResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderChangeResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return OrderChangeResult{}, err
	}

	var loc *location.Location
	if cmd.Actor().IsOperator() {
		if loc, err = uow.LocationRepository().Get(ctx, current.LocationID()); err != nil {
			return OrderChangeResult{}, err
		}
	}

	next, changed, err := h.machine.Transition(current, loc, cmd.Actor(), cmd.Status(), cmd.Notes(), h.clock.Now())
	if err != nil {
		return OrderChangeResult{}, err
	}

	if changed || cmd.Notes() != "" {
		if err = uow.OrderRepository().Update(ctx, next); err != nil {
			return OrderChangeResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderChangeResult{}, err
	}

	if changed {
		h.notifier.Dispatch(ctx, notification.StatusUpdated(next))
	}

	return OrderChangeResult{Order: next, Changed: changed}, nil
}
