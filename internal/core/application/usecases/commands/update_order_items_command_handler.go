package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderNotFoundForStore is the cause reported when the order is missing or
// belongs to a store the operator does not run.
var ErrOrderNotFoundForStore = errors.New("order not found for this store")

// UpdateOrderItemsResult is the edited order, the catalog entries read for it and
// the lines that changed.
type UpdateOrderItemsResult struct {
	Order    *order.Order
	Services map[int64]*catalog.Service
	Changes  services.ItemChanges
}

// UpdateOrderItemsCommandHandler reconciles operator item edits against current
// prices in a single transaction; either every edit lands or none does.
type UpdateOrderItemsCommandHandler struct {
	uowFactory OrderItemsUoWFactory
	machine    services.StatusMachine
	resolver   services.PricingResolver
	notifier   Notifier
	clock      kernel.Clock
}

func NewUpdateOrderItemsCommandHandler(
	uowFactory OrderItemsUoWFactory,
	notifier Notifier,
	clock kernel.Clock,
) UpdateOrderItemsCommandHandler {
	return UpdateOrderItemsCommandHandler{
		uowFactory: uowFactory,
		machine:    services.NewStatusMachine(),
		resolver:   services.NewPricingResolver(),
		notifier:   notifier,
		clock:      clock,
	}
}

func (h *UpdateOrderItemsCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderItemsCommand,
) (UpdateOrderItemsResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderItemsResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateOrderItemsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return UpdateOrderItemsResult{}, errs.NewObjectNotFoundErrorWithCause("order", cmd.OrderID(), ErrOrderNotFoundForStore)
	}
	if err != nil {
		return UpdateOrderItemsResult{}, err
	}

	loc, err := uow.LocationRepository().Get(ctx, o.LocationID())
	if err != nil {
		return UpdateOrderItemsResult{}, err
	}
	if err = h.machine.AuthorizeOperator(o, loc, cmd.Operator()); err != nil {
		if errors.Is(err, errs.ErrAccessDenied) {
			return UpdateOrderItemsResult{}, errs.NewObjectNotFoundErrorWithCause("order", cmd.OrderID(), ErrOrderNotFoundForStore)
		}
		return UpdateOrderItemsResult{}, err
	}

	priced, err := uow.CatalogRepository().GetByIDs(ctx, cmd.PricedServiceIDs())
	if err != nil {
		return UpdateOrderItemsResult{}, err
	}

	changes, err := h.resolver.Reconcile(o, cmd.Edits(), priced, h.clock.Now())
	if err != nil {
		return UpdateOrderItemsResult{}, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return UpdateOrderItemsResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateOrderItemsResult{}, err
	}

	if !changes.IsEmpty() {
		h.notifier.Dispatch(ctx, notification.ItemsUpdated(o))
	}

	return UpdateOrderItemsResult{Order: o, Services: priced, Changes: changes}, nil
}
