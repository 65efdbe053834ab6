package notification_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restored(t *testing.T, status order.Status, walkIn bool) *order.Order {
	t.Helper()
	w, _ := kernel.NewPickupWindow(
		time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	)
	item, _ := order.RestoreItem(1, 3, 1, nil)
	o, err := order.RestoreOrder(order.Snapshot{
		ID: 42, CustomerID: 10, LocationID: 4, Window: w, Status: status,
		IsWalkIn: walkIn, PaymentMode: order.PaymentModeCash, Items: []*order.Item{item},
	})
	require.NoError(t, err)
	return o
}

func TestStatusUpdated(t *testing.T) {
	for _, s := range order.Statuses() {
		n := notification.StatusUpdated(restored(t, s, false))

		assert.Equal(t, notification.TypeOrderStatusUpdated, n.Type, s)
		assert.Contains(t, n.Message, "#42", s)
		assert.NotEmpty(t, n.Title, s)
		assert.Equal(t, s, n.Status)
		assert.Equal(t, int64(10), n.CustomerID)
		assert.Equal(t, int64(4), n.LocationID)
	}

	assert.Equal(t, "Order Picked Up", notification.StatusUpdated(restored(t, order.PickedUp, false)).Title)
}

func TestOrderCreated(t *testing.T) {
	n := notification.OrderCreated(restored(t, order.Pending, false))
	assert.Equal(t, notification.TypeOrderCreated, n.Type)
	assert.Equal(t, "Your order #42 has been placed successfully.", n.Message)

	walkIn := notification.OrderCreated(restored(t, order.PickedUp, true))
	assert.Equal(t, "Order #42 has been created at the store.", walkIn.Message)
}

func TestItemsUpdated(t *testing.T) {
	n := notification.ItemsUpdated(restored(t, order.Processing, false))

	assert.Equal(t, "Order Items Updated", n.Title)
	assert.Contains(t, n.Message, "order #42")
}

func TestNewNotification(t *testing.T) {
	now := time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC)

	t.Run("from template", func(t *testing.T) {
		n, err := notification.NewNotification(notification.Rescheduled(restored(t, order.Pending, false)), now)

		require.NoError(t, err)
		assert.Equal(t, "Order Rescheduled", n.Title())
		assert.False(t, n.IsRead())
		assert.True(t, n.MarkRead())
		assert.False(t, n.MarkRead())
	})

	t.Run("empty type defaults to system", func(t *testing.T) {
		n, err := notification.NewNotification(notification.Notice{
			CustomerID: 1, LocationID: 1, Title: "Hello", Message: "World",
		}, now)

		require.NoError(t, err)
		assert.Equal(t, notification.TypeSystem, n.Type())
	})

	t.Run("invalid notice", func(t *testing.T) {
		_, err := notification.NewNotification(notification.Notice{Type: "sms"}, now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
