package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels a pending or confirmed order on behalf of its customer.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	machine    services.StatusMachine
	notifier   Notifier
	clock      kernel.Clock
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier Notifier,
	clock kernel.Clock,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		machine:    services.NewStatusMachine(),
		notifier:   notifier,
		clock:      clock,
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	current, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	cancelled, err := h.machine.Cancel(current, cmd.Customer(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, cancelled); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if cancelled.Status() != current.Status() {
		h.notifier.Dispatch(ctx, notification.StatusUpdated(cancelled))
	}

	return cancelled, nil
}
