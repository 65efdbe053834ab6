package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var bookedAt = time.Date(2024, 1, 9, 8, 0, 0, 0, time.UTC)

func testWindow(t *testing.T) kernel.PickupWindow {
	t.Helper()
	w, err := kernel.NewPickupWindow(
		time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return w
}

func testAddress(t *testing.T) *order.DeliveryAddress {
	t.Helper()
	p, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	a, err := order.NewDeliveryAddress(5, "12 MG Road", p)
	require.NoError(t, err)
	return &a
}

func testItem(t *testing.T, serviceID int64, quantity int) *order.Item {
	t.Helper()
	item, err := order.NewItem(serviceID, quantity, nil)
	require.NoError(t, err)
	return item
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(order.Booking{
		CustomerID: 10,
		LocationID: 4,
		Address:    testAddress(t),
		Window:     testWindow(t),
		Items:      []*order.Item{testItem(t, 3, 2)},
	}, bookedAt)
	require.NoError(t, err)
	return o
}

// restoredOrder returns a persisted order in the given status.
func restoredOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	item, err := order.RestoreItem(100, 3, 2, nil)
	require.NoError(t, err)
	o, err := order.RestoreOrder(order.Snapshot{
		ID:          1,
		CustomerID:  10,
		LocationID:  4,
		Address:     testAddress(t),
		Window:      testWindow(t),
		Status:      status,
		PaymentMode: order.PaymentModeCash,
		Items:       []*order.Item{item},
		CreatedAt:   bookedAt,
		UpdatedAt:   bookedAt,
	})
	require.NoError(t, err)
	return o
}
