package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

type PurgeReadNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	clock      kernel.Clock
}

func NewPurgeReadNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	clock kernel.Clock,
) PurgeReadNotificationsCommandHandler {
	return PurgeReadNotificationsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle deletes the expired read notifications and returns how many were removed.
func (h *PurgeReadNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeReadNotificationsCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.NotificationRepository().DeleteReadBefore(ctx, h.clock.Now().Add(-cmd.Retention()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
