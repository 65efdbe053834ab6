// Package ports defines the persistence and messaging contracts of the fulfillment core.
// Adapters in internal/adapters implement them; command handlers depend only on these interfaces.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and their items.
type OrderRepository interface {
	// Add persists a new order together with its items and returns it as stored,
	// with the order id and item ids assigned by the database.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists the order columns and reconciles its items: items missing from
	// the aggregate are deleted, new ones inserted, existing ones updated.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row (SELECT ... FOR UPDATE)
	// until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)
}
