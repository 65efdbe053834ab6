package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler flips the read flag of one of the customer's notifications.
// Notifications of other customers are reported as not found.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{uowFactory: uowFactory}
}

func (h *MarkNotificationReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkNotificationReadCommand,
) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()
	n, err := repo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return nil, err
	}
	if n.CustomerID() != cmd.Customer().ID() {
		return nil, errs.NewObjectNotFoundError("notification", cmd.NotificationID())
	}

	if n.MarkRead() {
		if err = repo.Update(ctx, n); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return n, nil
}
