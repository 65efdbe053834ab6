package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for customer notifications.
type NotificationRepository interface {
	// Add persists a notification and returns it with its assigned id.
	Add(ctx context.Context, n *notification.Notification) (*notification.Notification, error)

	// Get retrieves a notification by id.
	Get(ctx context.Context, id int64) (*notification.Notification, error)

	// Update persists the read flag.
	Update(ctx context.Context, n *notification.Notification) error

	// DeleteReadBefore removes read notifications created before cutoff and
	// returns how many rows were deleted.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
