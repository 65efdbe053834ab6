// Package notificationrepo persists customer notifications.
package notificationrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/notification"
)

type NotificationDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID int64     `gorm:"not null;index:idx_notifications_customer_created,priority:1"`
	LocationID int64     `gorm:"not null"`
	Title      string    `gorm:"not null"`
	Message    string    `gorm:"not null"`
	Type       string    `gorm:"type:varchar(32);not null"`
	IsRead     bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"type:timestamptz;not null;autoCreateTime:false;index:idx_notifications_customer_created,priority:2"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:         n.ID(),
		CustomerID: n.CustomerID(),
		LocationID: n.LocationID(),
		Title:      n.Title(),
		Message:    n.Message(),
		Type:       string(n.Type()),
		IsRead:     n.IsRead(),
		CreatedAt:  n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	return notification.RestoreNotification(
		dto.ID,
		dto.CustomerID,
		dto.LocationID,
		dto.Title,
		dto.Message,
		notification.Type(dto.Type),
		dto.IsRead,
		dto.CreatedAt,
	)
}
