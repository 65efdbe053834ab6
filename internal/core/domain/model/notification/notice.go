package notification

import (
	"fmt"

	"fulfillment/internal/core/domain/model/order"
)

// Notice is a request to notify a customer about one of their orders.
// OrderID and Status are carried to event consumers; they are not stored in the inbox.
type Notice struct {
	CustomerID int64
	LocationID int64
	Title      string
	Message    string
	Type       Type
	OrderID    int64
	Status     order.Status
}

type template struct {
	title   string
	message string
}

var statusTemplates = map[order.Status]template{
	order.Pending:          {"Order Received", "Your order #%d has been received and is awaiting confirmation."},
	order.Confirmed:        {"Order Confirmed", "Your order #%d has been confirmed by the store."},
	order.PickedUp:         {"Order Picked Up", "Your order #%d has been picked up."},
	order.Processing:       {"Order In Process", "Your order #%d is being processed."},
	order.ReadyForDelivery: {"Order Ready For Delivery", "Your order #%d is ready for delivery."},
	order.OutForDelivery:   {"Order Out For Delivery", "Your order #%d is out for delivery."},
	order.Delivered:        {"Order Delivered", "Your order #%d has been delivered. Thank you!"},
	order.Cancelled:        {"Order Cancelled", "Your order #%d has been cancelled."},
}

// OrderCreated is sent once an order has been committed.
func OrderCreated(o *order.Order) Notice {
	message := fmt.Sprintf("Your order #%d has been placed successfully.", o.ID())
	if o.IsWalkIn() {
		message = fmt.Sprintf("Order #%d has been created at the store.", o.ID())
	}
	return Notice{
		CustomerID: o.CustomerID(),
		LocationID: o.LocationID(),
		Title:      "Order Created",
		Message:    message,
		Type:       TypeOrderCreated,
		OrderID:    o.ID(),
		Status:     o.Status(),
	}
}

// StatusUpdated uses the template of the order's current status.
func StatusUpdated(o *order.Order) Notice {
	t, ok := statusTemplates[o.Status()]
	if !ok {
		t = template{"Order Updated", "Your order #%d has been updated."}
	}
	return Notice{
		CustomerID: o.CustomerID(),
		LocationID: o.LocationID(),
		Title:      t.title,
		Message:    fmt.Sprintf(t.message, o.ID()),
		Type:       TypeOrderStatusUpdated,
		OrderID:    o.ID(),
		Status:     o.Status(),
	}
}

// ItemsUpdated is sent after an operator edits the items of an order.
func ItemsUpdated(o *order.Order) Notice {
	return Notice{
		CustomerID: o.CustomerID(),
		LocationID: o.LocationID(),
		Title:      "Order Items Updated",
		Message: fmt.Sprintf(
			"The vendor has updated the items in your order #%d. Please check the updated order details.", o.ID()),
		Type:    TypeOrderStatusUpdated,
		OrderID: o.ID(),
		Status:  o.Status(),
	}
}

// Rescheduled is sent after the customer moves the pickup window.
func Rescheduled(o *order.Order) Notice {
	return Notice{
		CustomerID: o.CustomerID(),
		LocationID: o.LocationID(),
		Title:      "Order Rescheduled",
		Message: fmt.Sprintf("The pickup for your order #%d has been rescheduled to %s.",
			o.ID(), o.Window().Start().Format("2006-01-02 15:04 MST")),
		Type:    TypeOrderStatusUpdated,
		OrderID: o.ID(),
		Status:  o.Status(),
	}
}
