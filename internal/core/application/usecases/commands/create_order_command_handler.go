package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/location"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrAddressNotFound is the cause reported when the booking address is missing
// or belongs to another customer.
var ErrAddressNotFound = errors.New("address not found or does not belong to user")

// CreateOrderResult is the persisted booking together with what the caller needs
// to render it.
type CreateOrderResult struct {
	Order      *order.Order
	Location   *location.Location
	DistanceKm float64
	Services   map[int64]*catalog.Service
}

// CreateOrderCommandHandler assembles a booking into an order in one transaction.
//
// Steps, all inside the transaction:
//  1. Load the address; it must exist, belong to the customer and carry a coordinate
//  2. Read the nearby radius setting
//  3. Read eligible locations with a share lock and pick the nearest one
//  4. Check every requested service exists
//  5. Insert the pending order and its items
//
// Any failure rolls the whole booking back. The order_created notice is dispatched
// only after commit.
type CreateOrderCommandHandler struct {
	uowFactory BookingUoWFactory
	matcher    services.GeoMatcher
	notifier   Notifier
	clock      kernel.Clock
}

func NewCreateOrderCommandHandler(
	uowFactory BookingUoWFactory,
	notifier Notifier,
	clock kernel.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewGeoMatcher(),
		notifier:   notifier,
		clock:      clock,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
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

	delivery, err := loadDeliveryAddress(ctx, uow.AddressRepository(), cmd.AddressID(), cmd.Customer().ID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	raw, found, err := uow.SettingRepository().Get(ctx, ports.NearbyRadiusKey)
	if err != nil {
		return CreateOrderResult{}, err
	}

	candidates, err := uow.LocationRepository().GetEligibleForShare(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	match, err := h.matcher.FindNearest(delivery.Point(), candidates, services.ParseRadius(raw, found))
	if err != nil {
		return CreateOrderResult{}, err
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

	o, err := order.NewOrder(order.Booking{
		CustomerID: cmd.Customer().ID(),
		LocationID: match.Location.ID(),
		Address:    &delivery,
		Window:     cmd.Window(),
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
		Order:      saved,
		Location:   match.Location,
		DistanceKm: match.DistanceKm,
		Services:   catalogue,
	}, nil
}

func loadDeliveryAddress(
	ctx context.Context,
	repo ports.AddressRepository,
	addressID, customerID int64,
) (order.DeliveryAddress, error) {
	addr, err := repo.Get(ctx, addressID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return order.DeliveryAddress{}, errs.NewObjectNotFoundErrorWithCause("address", addressID, ErrAddressNotFound)
	}
	if err != nil {
		return order.DeliveryAddress{}, err
	}
	if !addr.BelongsTo(customerID) {
		return order.DeliveryAddress{}, errs.NewObjectNotFoundErrorWithCause("address", addressID, ErrAddressNotFound)
	}

	return addr.Snapshot()
}

// loadServices returns the catalog entries for ids, failing on the first missing one.
func loadServices(ctx context.Context, repo ports.CatalogRepository, ids []int64) (map[int64]*catalog.Service, error) {
	if len(ids) == 0 {
		return map[int64]*catalog.Service{}, nil
	}

	found, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if found[id] == nil {
			return nil, catalog.NotFound(id)
		}
	}
	return found, nil
}
