package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTransition(t *testing.T) {
	at := time.Date(2024, 1, 10, 10, 15, 0, 0, time.UTC)

	t.Run("should move along the graph and stamp the milestone", func(t *testing.T) {
		o := restoredOrder(t, order.Confirmed)

		next, changed, err := order.ApplyTransition(o, order.PickedUp, at)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.PickedUp, next.Status())
		require.NotNil(t, next.Milestones().PickedUpAt)
		assert.Equal(t, at, *next.Milestones().PickedUpAt)
		assert.Equal(t, at, next.UpdatedAt())
	})

	t.Run("should not mutate the input order", func(t *testing.T) {
		o := restoredOrder(t, order.Confirmed)

		_, _, err := order.ApplyTransition(o, order.PickedUp, at)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Nil(t, o.Milestones().PickedUpAt)
	})

	t.Run("re-entering the current status keeps the first stamp", func(t *testing.T) {
		o := restoredOrder(t, order.Confirmed)
		first, _, err := order.ApplyTransition(o, order.PickedUp, at)
		require.NoError(t, err)

		second, changed, err := order.ApplyTransition(first, order.PickedUp, at.Add(time.Hour))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, at, *second.Milestones().PickedUpAt)
		assert.Equal(t, first.UpdatedAt(), second.UpdatedAt())
	})

	t.Run("every stamp along the full lifecycle is set exactly once", func(t *testing.T) {
		o := newPendingOrder(t)
		path := []order.Status{
			order.Confirmed, order.PickedUp, order.Processing,
			order.ReadyForDelivery, order.OutForDelivery, order.Delivered,
		}

		current := o
		stamps := map[order.Status]time.Time{}
		for i, s := range path {
			stepAt := at.Add(time.Duration(i) * time.Hour)
			next, changed, err := order.ApplyTransition(current, s, stepAt)
			require.NoError(t, err)
			require.True(t, changed)
			stamps[s] = stepAt

			again, changed, err := order.ApplyTransition(next, s, stepAt.Add(time.Minute))
			require.NoError(t, err)
			require.False(t, changed)
			current = again
		}

		for s, want := range stamps {
			got := current.Milestones().At(s)
			require.NotNil(t, got, s)
			assert.Equal(t, want, *got, s)
		}
		assert.Nil(t, current.Milestones().CancelledAt)
	})

	t.Run("cancel is allowed from pending and confirmed only", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Confirmed} {
			next, changed, err := order.ApplyTransition(restoredOrder(t, s), order.Cancelled, at)
			require.NoError(t, err)
			assert.True(t, changed)
			assert.NotNil(t, next.Milestones().CancelledAt)
		}

		_, _, err := order.ApplyTransition(restoredOrder(t, order.Processing), order.Cancelled, at)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("skipping a stage is rejected", func(t *testing.T) {
		_, _, err := order.ApplyTransition(restoredOrder(t, order.Pending), order.PickedUp, at)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("terminal orders cannot move", func(t *testing.T) {
		_, _, err := order.ApplyTransition(restoredOrder(t, order.Delivered), order.OutForDelivery, at)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("unknown target status", func(t *testing.T) {
		_, _, err := order.ApplyTransition(restoredOrder(t, order.Pending), order.Status("shipped"), at)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("nil order", func(t *testing.T) {
		_, _, err := order.ApplyTransition(nil, order.Confirmed, at)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
