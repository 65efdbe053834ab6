package ports

import (
	"context"
	"time"
)

// NotificationEvent is the message emitted for every stored notification.
type NotificationEvent struct {
	EventID        string    `json:"eventId"`
	NotificationID int64     `json:"notificationId"`
	CustomerID     int64     `json:"customerId"`
	LocationID     int64     `json:"locationId"`
	OrderID        int64     `json:"orderId,omitempty"`
	Status         string    `json:"status,omitempty"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// NotificationPublisher forwards notification events to a message broker.
type NotificationPublisher interface {
	Publish(ctx context.Context, event NotificationEvent) error
}
