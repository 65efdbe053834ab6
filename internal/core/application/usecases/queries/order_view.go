// Package queries contains the read side: order listings and details, the
// notification inbox, booking time slots and the nearby radius setting.
// Handlers read straight from the database and return read models shaped for the API.
package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is the read model of an order with its store, delivery address and
// priced items.
type OrderView struct {
	ID          int64
	CustomerID  int64
	Status      string
	IsExpress   bool
	IsWalkIn    bool
	PaymentMode string
	Notes       string
	PickupStart time.Time
	PickupEnd   time.Time
	// ServiceID is the service of the first item, nil when the order has no items.
	ServiceID   *int64
	Store       StoreView
	Address     *DeliveryAddressView
	Items       []OrderItemView
	TotalAmount decimal.Decimal
	Milestones  MilestonesView
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type StoreView struct {
	ID        int64
	Name      string
	Latitude  *float64
	Longitude *float64
}

type DeliveryAddressView struct {
	AddressID int64
	Line      string
	Latitude  float64
	Longitude float64
}

// OrderItemView carries the resolved total: the stored override when present,
// otherwise quantity × the current unit price.
type OrderItemView struct {
	ID          int64
	ServiceID   int64
	ServiceName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	IsOverride  bool
}

type MilestonesView struct {
	ConfirmedAt        *time.Time
	PickedUpAt         *time.Time
	ProcessingAt       *time.Time
	ReadyForDeliveryAt *time.Time
	OutForDeliveryAt   *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
}

const orderColumns = `
	SELECT
		o.id,
		o.customer_id,
		o.status,
		o.is_express,
		o.is_walk_in,
		o.payment_mode,
		o.notes,
		o.pickup_slot_start,
		o.pickup_slot_end,
		o.address_id,
		o.delivery_address_line,
		o.delivery_latitude,
		o.delivery_longitude,
		o.confirmed_at,
		o.picked_up_at,
		o.processing_at,
		o.ready_for_delivery_at,
		o.out_for_delivery_at,
		o.delivered_at,
		o.cancelled_at,
		o.created_at,
		o.updated_at,
		s.id,
		s.name,
		s.latitude,
		s.longitude
	FROM orders o
	JOIN stores s ON s.id = o.location_id
`

// readOrders runs orderColumns with the given WHERE and ORDER BY tail and attaches
// the items of every order found.
func readOrders(ctx context.Context, db *gorm.DB, tail string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(orderColumns+tail, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		var (
			o         OrderView
			addressID *int64
			line      *string
			lat, lng  *float64
		)

		err = rows.Scan(
			&o.ID,
			&o.CustomerID,
			&o.Status,
			&o.IsExpress,
			&o.IsWalkIn,
			&o.PaymentMode,
			&o.Notes,
			&o.PickupStart,
			&o.PickupEnd,
			&addressID,
			&line,
			&lat,
			&lng,
			&o.Milestones.ConfirmedAt,
			&o.Milestones.PickedUpAt,
			&o.Milestones.ProcessingAt,
			&o.Milestones.ReadyForDeliveryAt,
			&o.Milestones.OutForDeliveryAt,
			&o.Milestones.DeliveredAt,
			&o.Milestones.CancelledAt,
			&o.CreatedAt,
			&o.UpdatedAt,
			&o.Store.ID,
			&o.Store.Name,
			&o.Store.Latitude,
			&o.Store.Longitude,
		)
		if err != nil {
			return nil, err
		}

		if addressID != nil && lat != nil && lng != nil {
			o.Address = &DeliveryAddressView{AddressID: *addressID, Latitude: *lat, Longitude: *lng}
			if line != nil {
				o.Address.Line = *line
			}
		}

		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = attachItems(ctx, db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func attachItems(ctx context.Context, db *gorm.DB, orders []OrderView) error {
	if len(orders) == 0 {
		return nil
	}

	index := make(map[int64]*OrderView, len(orders))
	ids := make([]int64, 0, len(orders))
	for i := range orders {
		orders[i].Items = make([]OrderItemView, 0)
		index[orders[i].ID] = &orders[i]
		ids = append(ids, orders[i].ID)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.order_id,
			i.service_id,
			sv.name,
			sv.price,
			i.quantity,
			i.total_amount
		FROM order_items i
		JOIN services sv ON sv.id = i.service_id
		WHERE i.order_id IN ?
		ORDER BY i.order_id, i.id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item     OrderItemView
			orderID  int64
			override decimal.NullDecimal
		)

		err = rows.Scan(
			&item.ID,
			&orderID,
			&item.ServiceID,
			&item.ServiceName,
			&item.UnitPrice,
			&item.Quantity,
			&override,
		)
		if err != nil {
			return err
		}

		var stored *decimal.Decimal
		if override.Valid {
			stored = &override.Decimal
			item.IsOverride = true
		}
		item.TotalAmount = services.ResolveTotal(item.Quantity, stored, item.UnitPrice)

		o := index[orderID]
		if o.ServiceID == nil {
			serviceID := item.ServiceID
			o.ServiceID = &serviceID
		}
		o.Items = append(o.Items, item)
		o.TotalAmount = o.TotalAmount.Add(item.TotalAmount)
	}

	return rows.Err()
}
