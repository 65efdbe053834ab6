package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// CreateWalkInOrderCommandHandler opens a walk-in order at one of the operator's
// stores. No location matching happens: the store is the one the customer walked into.
// The order starts picked_up with the pickup window and picked_up_at set to now.
type CreateWalkInOrderCommandHandler struct {
	uowFactory BookingUoWFactory
	notifier   Notifier
	clock      kernel.Clock
}

func NewCreateWalkInOrderCommandHandler(
	uowFactory BookingUoWFactory,
	notifier Notifier,
	clock kernel.Clock,
) CreateWalkInOrderCommandHandler {
	return CreateWalkInOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
	}
}

func (h *CreateWalkInOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateWalkInOrderCommand,
) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loc, err := uow.LocationRepository().Get(ctx, cmd.LocationID())
	if err != nil {
		return CreateOrderResult{}, err
	}
	if !loc.IsOperatedBy(cmd.Operator().ID()) {
		return CreateOrderResult{}, errs.NewAccessDeniedError("store", cmd.LocationID())
	}

	var delivery *order.DeliveryAddress
	if addressID := cmd.AddressID(); addressID != nil {
		snapshot, addrErr := loadDeliveryAddress(ctx, uow.AddressRepository(), *addressID, cmd.CustomerID())
		if addrErr != nil {
			return CreateOrderResult{}, addrErr
		}
		delivery = &snapshot
	}

	selections := cmd.Selections()
	catalogue, err := loadServices(ctx, uow.CatalogRepository(), serviceIDs(selections))
	if err != nil {
		return CreateOrderResult{}, err
	}

	items, err := newItems(selections)
	if err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewWalkInOrder(order.Booking{
		CustomerID: cmd.CustomerID(),
		LocationID: loc.ID(),
		Address:    delivery,
		Items:      items,
		IsExpress:  cmd.IsExpress(),
		Notes:      cmd.Notes(),
	}, h.clock.Now())
	if err != nil {
		return CreateOrderResult{}, err
	}

	saved, err := uow.OrderRepository().Add(ctx, o)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	h.notifier.Dispatch(ctx, notification.OrderCreated(saved))

	return CreateOrderResult{
		Order:    saved,
		Location: loc,
		Services: catalogue,
	}, nil
}
