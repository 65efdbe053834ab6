package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetCustomerNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerNotificationsQueryHandler(db *gorm.DB) GetCustomerNotificationsQueryHandler {
	return GetCustomerNotificationsQueryHandler{db: db}
}

func (h GetCustomerNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerNotificationsQuery,
) (InboxView, error) {
	if err := query.Validate(); err != nil {
		return InboxView{}, err
	}

	inbox := InboxView{Notifications: make([]NotificationView, 0)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			location_id,
			title,
			message,
			type,
			is_read,
			created_at
		FROM notifications
		WHERE customer_id = ? AND (NOT ? OR NOT is_read)
		ORDER BY created_at DESC, id DESC
	`, query.CustomerID(), query.UnreadOnly()).Rows()
	if err != nil {
		return InboxView{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var n NotificationView
		err = rows.Scan(
			&n.ID,
			&n.LocationID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.IsRead,
			&n.CreatedAt,
		)
		if err != nil {
			return InboxView{}, err
		}
		inbox.Notifications = append(inbox.Notifications, n)
	}

	if err = rows.Err(); err != nil {
		return InboxView{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM notifications WHERE customer_id = ? AND NOT is_read
	`, query.CustomerID()).Row().Scan(&inbox.UnreadCount)
	if err != nil {
		return InboxView{}, err
	}

	return inbox, nil
}
