package queries

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCustomerNotificationsQueryIsNotConstructed = errors.New(
	"GetCustomerNotificationsQuery must be created via NewGetCustomerNotificationsQuery constructor",
)

// GetCustomerNotificationsQuery reads the customer's inbox, newest first.
type GetCustomerNotificationsQuery struct {
	customerID int64
	unreadOnly bool

	guard guard.ConstructorGuard
}

func NewGetCustomerNotificationsQuery(customerID int64, unreadOnly bool) (GetCustomerNotificationsQuery, error) {
	if customerID <= 0 {
		return GetCustomerNotificationsQuery{}, errs.NewValueIsInvalidErrorWithCause("customerId",
			fmt.Errorf("%d is not a valid id", customerID))
	}

	return GetCustomerNotificationsQuery{
		customerID: customerID,
		unreadOnly: unreadOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerNotificationsQueryIsNotConstructed)
}

func (q GetCustomerNotificationsQuery) CustomerID() int64 {
	return q.customerID
}

func (q GetCustomerNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

type NotificationView struct {
	ID         int64
	LocationID int64
	Title      string
	Message    string
	Type       string
	IsRead     bool
	CreatedAt  time.Time
}

// InboxView is the page of notifications plus the unread total across the inbox.
type InboxView struct {
	Notifications []NotificationView
	UnreadCount   int64
}
