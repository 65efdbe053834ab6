package http

import (
	"fmt"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/location"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type orderJSON struct {
	ID              int64            `json:"id"`
	CustomerID      int64            `json:"customerId"`
	LocationID      int64            `json:"locationId"`
	ServiceID       *int64           `json:"serviceId"`
	Status          string           `json:"status"`
	IsExpress       bool             `json:"isExpress"`
	IsWalkIn        bool             `json:"isWalkIn"`
	PaymentMode     string           `json:"paymentMode"`
	Notes           string           `json:"notes"`
	PickupSlot      pickupSlotJSON   `json:"pickupSlot"`
	Location        *locationJSON    `json:"location,omitempty"`
	DeliveryAddress *addressJSON     `json:"deliveryAddress"`
	Items           []itemJSON       `json:"items"`
	TotalAmount     *decimal.Decimal `json:"totalAmount,omitempty"`
	Milestones      milestonesJSON   `json:"milestones"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

type pickupSlotJSON struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Display string    `json:"display"`
}

type locationJSON struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	DistanceKm *float64 `json:"distanceKm,omitempty"`
	Distance   string   `json:"distance,omitempty"`
}

type addressJSON struct {
	AddressID int64   `json:"addressId"`
	Line      string  `json:"addressLine"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type itemJSON struct {
	ID          int64            `json:"id"`
	ServiceID   int64            `json:"serviceId"`
	ServiceName string           `json:"serviceName,omitempty"`
	Quantity    int              `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	TotalAmount *decimal.Decimal `json:"totalAmount"`
}

type milestonesJSON struct {
	ConfirmedAt        *time.Time `json:"confirmedAt"`
	PickedUpAt         *time.Time `json:"pickedUpAt"`
	ProcessingAt       *time.Time `json:"processingAt"`
	ReadyForDeliveryAt *time.Time `json:"readyForDeliveryAt"`
	OutForDeliveryAt   *time.Time `json:"outForDeliveryAt"`
	DeliveredAt        *time.Time `json:"deliveredAt"`
	CancelledAt        *time.Time `json:"cancelledAt"`
}

type bookingJSON struct {
	Order            orderJSON      `json:"order"`
	AssignedLocation *locationJSON  `json:"assignedLocation"`
	PickupSlot       pickupSlotJSON `json:"pickupSlot"`
}

type timeSlotJSON struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Display     string    `json:"display"`
	IsAvailable bool      `json:"isAvailable"`
}

type nearbyRadiusJSON struct {
	Key      string  `json:"key"`
	Value    string  `json:"value"`
	RadiusKm float64 `json:"radiusKm"`
}

type notificationJSON struct {
	ID         int64     `json:"id"`
	LocationID int64     `json:"locationId"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"type"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

type inboxJSON struct {
	Notifications []notificationJSON `json:"notifications"`
	UnreadCount   int64              `json:"unreadCount"`
}

type transactionJSON struct {
	OrderID     int64           `json:"orderId"`
	LocationID  int64           `json:"locationId"`
	CustomerID  int64           `json:"customerId"`
	DeliveredAt time.Time       `json:"deliveredDate"`
	PaymentMode string          `json:"paymentMethod"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type paymentModeJSON struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type transactionsSummaryJSON struct {
	TotalTransactions int             `json:"totalTransactions"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
}

type transactionsJSON struct {
	Period         string                     `json:"period,omitempty"`
	StartDate      time.Time                  `json:"startDate"`
	EndDate        time.Time                  `json:"endDate"`
	Summary        transactionsSummaryJSON    `json:"summary"`
	PaymentMethods map[string]paymentModeJSON `json:"paymentMethods"`
	Transactions   []transactionJSON          `json:"transactions"`
}

func slotJSON(w kernel.PickupWindow, zone *time.Location) pickupSlotJSON {
	return pickupSlotJSON{Start: w.Start(), End: w.End(), Display: w.Display(zone)}
}

// orderFromDomain renders an aggregate. Item totals are resolved against prices
// when the service is present in prices; otherwise only stored overrides appear.
func orderFromDomain(o *order.Order, prices map[int64]*catalog.Service, zone *time.Location) orderJSON {
	out := orderJSON{
		ID:          o.ID(),
		CustomerID:  o.CustomerID(),
		LocationID:  o.LocationID(),
		Status:      string(o.Status()),
		IsExpress:   o.IsExpress(),
		IsWalkIn:    o.IsWalkIn(),
		PaymentMode: o.PaymentMode(),
		Notes:       o.Notes(),
		PickupSlot:  slotJSON(o.Window(), zone),
		Items:       make([]itemJSON, 0, len(o.Items())),
		Milestones:  milestonesFromDomain(o.Milestones()),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
	if id := o.PrimaryServiceID(); id > 0 {
		out.ServiceID = &id
	}
	if a := o.Address(); a != nil {
		out.DeliveryAddress = &addressJSON{
			AddressID: a.AddressID(),
			Line:      a.Line(),
			Latitude:  a.Point().Latitude(),
			Longitude: a.Point().Longitude(),
		}
	}

	total := decimal.Zero
	priced := true
	for _, item := range o.Items() {
		view := itemJSON{ID: item.ID(), ServiceID: item.ServiceID(), Quantity: item.Quantity()}
		if svc, ok := prices[item.ServiceID()]; ok {
			price := svc.Price()
			resolved := item.ResolvedTotal(price)
			view.ServiceName = svc.Name()
			view.UnitPrice = &price
			view.TotalAmount = &resolved
			total = total.Add(resolved)
		} else {
			view.TotalAmount = item.TotalAmount()
			priced = false
		}
		out.Items = append(out.Items, view)
	}
	if priced {
		out.TotalAmount = &total
	}

	return out
}

func orderFromView(v queries.OrderView, zone *time.Location) orderJSON {
	start, end := v.PickupStart.UTC(), v.PickupEnd.UTC()
	out := orderJSON{
		ID:          v.ID,
		CustomerID:  v.CustomerID,
		LocationID:  v.Store.ID,
		ServiceID:   v.ServiceID,
		Status:      v.Status,
		IsExpress:   v.IsExpress,
		IsWalkIn:    v.IsWalkIn,
		PaymentMode: v.PaymentMode,
		Notes:       v.Notes,
		PickupSlot: pickupSlotJSON{
			Start:   start,
			End:     end,
			Display: displayRange(start, end, zone),
		},
		Location: &locationJSON{
			ID:        v.Store.ID,
			Name:      v.Store.Name,
			Latitude:  v.Store.Latitude,
			Longitude: v.Store.Longitude,
		},
		Items: make([]itemJSON, 0, len(v.Items)),
		Milestones: milestonesJSON{
			ConfirmedAt:        v.Milestones.ConfirmedAt,
			PickedUpAt:         v.Milestones.PickedUpAt,
			ProcessingAt:       v.Milestones.ProcessingAt,
			ReadyForDeliveryAt: v.Milestones.ReadyForDeliveryAt,
			OutForDeliveryAt:   v.Milestones.OutForDeliveryAt,
			DeliveredAt:        v.Milestones.DeliveredAt,
			CancelledAt:        v.Milestones.CancelledAt,
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
	total := v.TotalAmount
	out.TotalAmount = &total

	if v.Address != nil {
		out.DeliveryAddress = &addressJSON{
			AddressID: v.Address.AddressID,
			Line:      v.Address.Line,
			Latitude:  v.Address.Latitude,
			Longitude: v.Address.Longitude,
		}
	}

	for _, item := range v.Items {
		unit, itemTotal := item.UnitPrice, item.TotalAmount
		out.Items = append(out.Items, itemJSON{
			ID:          item.ID,
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName,
			Quantity:    item.Quantity,
			UnitPrice:   &unit,
			TotalAmount: &itemTotal,
		})
	}

	return out
}

func ordersFromViews(views []queries.OrderView, zone *time.Location) []orderJSON {
	out := make([]orderJSON, 0, len(views))
	for _, v := range views {
		out = append(out, orderFromView(v, zone))
	}
	return out
}

func locationFromDomain(l *location.Location, distanceKm float64) *locationJSON {
	if l == nil {
		return nil
	}
	out := &locationJSON{
		ID:         l.ID(),
		Name:       l.Name(),
		DistanceKm: &distanceKm,
		Distance:   fmt.Sprintf("%.2f km", distanceKm),
	}
	if p := l.Point(); p != nil {
		lat, lng := p.Latitude(), p.Longitude()
		out.Latitude, out.Longitude = &lat, &lng
	}
	return out
}

func milestonesFromDomain(m order.Milestones) milestonesJSON {
	return milestonesJSON{
		ConfirmedAt:        m.ConfirmedAt,
		PickedUpAt:         m.PickedUpAt,
		ProcessingAt:       m.ProcessingAt,
		ReadyForDeliveryAt: m.ReadyForDeliveryAt,
		OutForDeliveryAt:   m.OutForDeliveryAt,
		DeliveredAt:        m.DeliveredAt,
		CancelledAt:        m.CancelledAt,
	}
}

func notificationFromDomain(n *notification.Notification) notificationJSON {
	return notificationJSON{
		ID:         n.ID(),
		LocationID: n.LocationID(),
		Title:      n.Title(),
		Message:    n.Message(),
		Type:       string(n.Type()),
		IsRead:     n.IsRead(),
		CreatedAt:  n.CreatedAt(),
	}
}

func inboxFromView(v queries.InboxView) inboxJSON {
	out := inboxJSON{Notifications: make([]notificationJSON, 0, len(v.Notifications)), UnreadCount: v.UnreadCount}
	for _, n := range v.Notifications {
		out.Notifications = append(out.Notifications, notificationJSON{
			ID:         n.ID,
			LocationID: n.LocationID,
			Title:      n.Title,
			Message:    n.Message,
			Type:       n.Type,
			IsRead:     n.IsRead,
			CreatedAt:  n.CreatedAt,
		})
	}
	return out
}

func displayRange(start, end time.Time, zone *time.Location) string {
	w, err := kernel.NewPickupWindow(start, end)
	if err != nil {
		return ""
	}
	return w.Display(zone)
}

func transactionsFromView(v queries.TransactionsView) transactionsJSON {
	out := transactionsJSON{
		StartDate: v.From,
		EndDate:   v.To,
		Summary: transactionsSummaryJSON{
			TotalTransactions: v.TotalTransactions,
			TotalRevenue:      v.TotalRevenue,
		},
		PaymentMethods: make(map[string]paymentModeJSON, len(v.PaymentModes)),
		Transactions:   make([]transactionJSON, 0, len(v.Transactions)),
	}
	if v.Days > 0 {
		out.Period = fmt.Sprintf("%d days", v.Days)
	}
	for mode, summary := range v.PaymentModes {
		out.PaymentMethods[mode] = paymentModeJSON{Count: summary.Count, Amount: summary.Amount}
	}
	for _, t := range v.Transactions {
		out.Transactions = append(out.Transactions, transactionJSON(t))
	}
	return out
}
