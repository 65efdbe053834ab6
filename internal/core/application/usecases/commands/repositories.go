// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, persistence,
// and side effects strictly after commit.
package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	SettingRepoFactory interface {
		SettingRepository() ports.SettingRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// BookingUoW covers order creation: the address, the radius setting, the
	// candidate locations, the catalog and the new order share one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   candidates, err := uow.LocationRepository().GetEligibleForShare(ctx)
	//   // ... match, build the order
	//   saved, err := uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	BookingUoW interface {
		TxManager
		OrderRepoFactory
		LocationRepoFactory
		CatalogRepoFactory
		AddressRepoFactory
		SettingRepoFactory
	}

	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// OrderUoW covers status changes, cancellation and rescheduling of one order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		LocationRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderItemsUoW covers operator item edits, which also read current prices.
	OrderItemsUoW interface {
		TxManager
		OrderRepoFactory
		LocationRepoFactory
		CatalogRepoFactory
	}

	OrderItemsUoWFactory interface {
		Create() OrderItemsUoW
	}

	SettingUoW interface {
		TxManager
		SettingRepoFactory
	}

	SettingUoWFactory interface {
		Create() SettingUoW
	}

	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)

// Notifier receives notices once the triggering transaction has committed.
// Implementations must not fail the caller.
type Notifier interface {
	Dispatch(ctx context.Context, notice notification.Notice)
}
