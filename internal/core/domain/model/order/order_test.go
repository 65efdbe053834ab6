package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with all valid parameters", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, int64(0), o.ID())
		assert.Equal(t, int64(10), o.CustomerID())
		assert.Equal(t, int64(4), o.LocationID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentModeCash, o.PaymentMode())
		assert.False(t, o.IsWalkIn())
		assert.Equal(t, bookedAt, o.CreatedAt())
		assert.Equal(t, order.Milestones{}, o.Milestones())
		require.Len(t, o.Items(), 1)
		assert.Equal(t, 2, o.Items()[0].Quantity())
		assert.Equal(t, int64(3), o.PrimaryServiceID())
		assert.Equal(t, "12 MG Road", o.Address().Line())
	})

	t.Run("should fail without items", func(t *testing.T) {
		o, err := order.NewOrder(order.Booking{
			CustomerID: 10,
			LocationID: 4,
			Address:    testAddress(t),
			Window:     testWindow(t),
		}, bookedAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should fail with duplicate services", func(t *testing.T) {
		_, err := order.NewOrder(order.Booking{
			CustomerID: 10,
			LocationID: 4,
			Address:    testAddress(t),
			Window:     testWindow(t),
			Items:      []*order.Item{testItem(t, 3, 1), testItem(t, 3, 2)},
		}, bookedAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "more than once")
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		_, err := order.NewOrder(order.Booking{Items: []*order.Item{testItem(t, 1, 1)}}, bookedAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "address")
		assert.Contains(t, err.Error(), "customerId")
		assert.Contains(t, err.Error(), "locationId")
		assert.Contains(t, err.Error(), "pickup window")
	})
}

func TestNewWalkInOrder(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

	o, err := order.NewWalkInOrder(order.Booking{
		CustomerID: 10,
		LocationID: 4,
		Items:      []*order.Item{testItem(t, 3, 1)},
		IsExpress:  true,
	}, now)

	require.NoError(t, err)
	assert.Equal(t, order.PickedUp, o.Status())
	assert.True(t, o.IsWalkIn())
	assert.True(t, o.IsExpress())
	assert.Nil(t, o.Address())
	assert.Equal(t, now, o.Window().Start())
	require.NotNil(t, o.Milestones().PickedUpAt)
	assert.Equal(t, now, *o.Milestones().PickedUpAt)
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should sort items by id", func(t *testing.T) {
		second, _ := order.RestoreItem(20, 7, 1, nil)
		first, _ := order.RestoreItem(10, 3, 2, nil)

		o, err := order.RestoreOrder(order.Snapshot{
			ID: 1, CustomerID: 10, LocationID: 4, Window: testWindow(t),
			Status: order.Confirmed, PaymentMode: order.PaymentModeCash,
			Items: []*order.Item{second, first},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(3), o.PrimaryServiceID())
	})

	t.Run("should accept an order without items", func(t *testing.T) {
		o, err := order.RestoreOrder(order.Snapshot{
			ID: 1, CustomerID: 10, LocationID: 4, Window: testWindow(t),
			Status: order.Processing, PaymentMode: order.PaymentModeCash,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(0), o.PrimaryServiceID())
	})

	t.Run("should reject unknown status and payment mode", func(t *testing.T) {
		_, err := order.RestoreOrder(order.Snapshot{
			ID: 1, CustomerID: 10, LocationID: 4, Window: testWindow(t),
			Status: order.Status("lost"), PaymentMode: "card",
		})

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("snapshot round trip", func(t *testing.T) {
		o := restoredOrder(t, order.Confirmed)

		restored, err := order.RestoreOrder(o.Snapshot())

		require.NoError(t, err)
		assert.Equal(t, o.Snapshot(), restored.Snapshot())
	})
}

func TestOrder_EnsureCustomerModifiable(t *testing.T) {
	for _, s := range order.Statuses() {
		err := restoredOrder(t, s).EnsureCustomerModifiable()
		if s == order.Pending || s == order.Confirmed {
			require.NoError(t, err, s)
			continue
		}
		require.ErrorIs(t, err, errs.ErrInvalidTransition, s)
		assert.Contains(t, err.Error(), order.ReasonNotModifiable)
	}
}

func TestOrder_Reschedule(t *testing.T) {
	at := time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC)
	newWindow, _ := kernel.NewPickupWindow(
		time.Date(2024, 1, 11, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 11, 16, 0, 0, 0, time.UTC),
	)

	t.Run("pending order", func(t *testing.T) {
		o := restoredOrder(t, order.Pending)

		require.NoError(t, o.Reschedule(newWindow, at))
		assert.Equal(t, newWindow, o.Window())
		assert.Equal(t, at, o.UpdatedAt())
	})

	t.Run("picked up order", func(t *testing.T) {
		o := restoredOrder(t, order.PickedUp)

		err := o.Reschedule(newWindow, at)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, testWindow(t), o.Window())
	})
}

func TestOrder_AppendNotes(t *testing.T) {
	o := restoredOrder(t, order.Confirmed)

	o.AppendNotes("  bag of 3 shirts ", bookedAt)
	o.AppendNotes("", bookedAt)
	o.AppendNotes("stain on collar", bookedAt)

	assert.Equal(t, "bag of 3 shirts\nstain on collar", o.Notes())
}

func TestOrder_Items(t *testing.T) {
	at := time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC)
	override := decimal.RequireFromString("150.00")

	t.Run("upsert updates an existing item", func(t *testing.T) {
		o := restoredOrder(t, order.Processing)

		require.NoError(t, o.UpsertItem(3, 5, &override, at))

		item := o.ItemFor(3)
		require.NotNil(t, item)
		assert.Equal(t, int64(100), item.ID())
		assert.Equal(t, 5, item.Quantity())
		assert.True(t, override.Equal(*item.TotalAmount()))
	})

	t.Run("upsert appends a new item", func(t *testing.T) {
		o := restoredOrder(t, order.Processing)

		require.NoError(t, o.UpsertItem(9, 1, nil, at))

		assert.Equal(t, []int64{3, 9}, o.ServiceIDs())
		assert.Equal(t, int64(3), o.PrimaryServiceID())
	})

	t.Run("remove deletes the item", func(t *testing.T) {
		o := restoredOrder(t, order.Processing)

		removed, err := o.RemoveItem(3, at)
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Empty(t, o.Items())

		removed, err = o.RemoveItem(3, at)
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("terminal orders are locked", func(t *testing.T) {
		o := restoredOrder(t, order.Delivered)

		require.ErrorIs(t, o.UpsertItem(3, 1, nil, at), errs.ErrInvalidTransition)
		_, err := o.RemoveItem(3, at)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("upsert rejects zero quantity", func(t *testing.T) {
		o := restoredOrder(t, order.Pending)

		require.ErrorIs(t, o.UpsertItem(3, 0, nil, at), errs.ErrValueIsInvalid)
		assert.Equal(t, 2, o.ItemFor(3).Quantity())
	})
}
