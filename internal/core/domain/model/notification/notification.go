// Package notification models the customer inbox entries written after order changes.
package notification

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"fulfillment/internal/pkg/errs"
)

// Type tags what produced a notification.
type Type string

const (
	TypeOrderCreated       Type = "order_created"
	TypeOrderStatusUpdated Type = "order_status_updated"
	TypePromotion          Type = "promotion"
	TypeSystem             Type = "system"
	TypeOther              Type = "other"
)

var types = []Type{TypeOrderCreated, TypeOrderStatusUpdated, TypePromotion, TypeSystem, TypeOther}

func (t Type) Validate() error {
	if slices.Contains(types, t) {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a notification type", string(t)))
}

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Notification is one inbox entry. Only the read flag ever changes.
type Notification struct {
	id            int64
	customerID    int64
	locationID    int64
	title         string
	message       string
	kind          Type
	isRead        bool
	createdAt     time.Time
	isConstructed bool
}

// NewNotification builds an unread notification from a notice.
func NewNotification(n Notice, now time.Time) (*Notification, error) {
	notification := &Notification{
		title:         strings.TrimSpace(n.Title),
		message:       strings.TrimSpace(n.Message),
		createdAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		notification.setCustomerID(n.CustomerID),
		notification.setLocationID(n.LocationID),
		notification.setKind(n.Type),
		notification.validateText(),
	); err != nil {
		return nil, err
	}

	return notification, nil
}

// RestoreNotification rebuilds a stored notification.
func RestoreNotification(
	id, customerID, locationID int64,
	title, message string,
	kind Type,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(Notice{
		CustomerID: customerID,
		LocationID: locationID,
		Title:      title,
		Message:    message,
		Type:       kind,
	}, createdAt)
	if err != nil {
		return nil, err
	}
	n.id = id
	n.isRead = isRead
	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() int64 {
	return n.id
}

func (n *Notification) CustomerID() int64 {
	return n.customerID
}

func (n *Notification) LocationID() int64 {
	return n.locationID
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Type() Type {
	return n.kind
}

func (n *Notification) IsRead() bool {
	return n.isRead
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead flags the notification as read. It reports whether the flag changed.
func (n *Notification) MarkRead() bool {
	if n.isRead {
		return false
	}
	n.isRead = true
	return true
}

func (n *Notification) setCustomerID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customerId", fmt.Errorf("%d is not greater than 0", id))
	}
	n.customerID = id
	return nil
}

func (n *Notification) setLocationID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("locationId", fmt.Errorf("%d is not greater than 0", id))
	}
	n.locationID = id
	return nil
}

func (n *Notification) setKind(kind Type) error {
	if kind == "" {
		kind = TypeSystem
	}
	if err := kind.Validate(); err != nil {
		return err
	}
	n.kind = kind
	return nil
}

func (n *Notification) validateText() error {
	var titleErr, messageErr error
	if n.title == "" {
		titleErr = errs.NewValueIsRequiredError("title")
	}
	if n.message == "" {
		messageErr = errs.NewValueIsRequiredError("message")
	}
	return errors.Join(titleErr, messageErr)
}
