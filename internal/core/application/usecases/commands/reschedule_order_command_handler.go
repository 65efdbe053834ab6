package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// RescheduleOrderCommandHandler replaces the pickup window of a pending or confirmed order.
type RescheduleOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	machine    services.StatusMachine
	notifier   Notifier
	clock      kernel.Clock
}

func NewRescheduleOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
	clock kernel.Clock,
) RescheduleOrderCommandHandler {
	return RescheduleOrderCommandHandler{
		uowFactory: uowFactory,
		machine:    services.NewStatusMachine(),
		notifier:   notifier,
		clock:      clock,
	}
}

func (h *RescheduleOrderCommandHandler) Handle(ctx context.Context, cmd RescheduleOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.machine.Reschedule(o, cmd.Customer(), cmd.Window(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Dispatch(ctx, notification.Rescheduled(o))
	return o, nil
}
