package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMachine_Transition(t *testing.T) {
	machine := services.NewStatusMachine()
	store := activeSiteAt(t, 4, 1) // operated by 400
	owner := actor(t, kernel.RoleOperator, 400)

	t.Run("owner drives the order forward and notes are appended", func(t *testing.T) {
		o := orderAt(t, order.Confirmed)

		next, changed, err := machine.Transition(o, store, owner, order.PickedUp, "2 bags", now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.PickedUp, next.Status())
		assert.Equal(t, "2 bags", next.Notes())
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("second identical transition is a no-op", func(t *testing.T) {
		o := orderAt(t, order.Confirmed)
		first, _, err := machine.Transition(o, store, owner, order.PickedUp, "", now)
		require.NoError(t, err)

		second, changed, err := machine.Transition(first, store, owner, order.PickedUp, "", now.Add(time.Hour))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, *first.Milestones().PickedUpAt, *second.Milestones().PickedUpAt)
	})

	t.Run("owner may cancel", func(t *testing.T) {
		next, changed, err := machine.Transition(orderAt(t, order.Pending), store, owner, order.Cancelled, "", now)

		require.NoError(t, err)
		assert.True(t, changed)
		assert.NotNil(t, next.Milestones().CancelledAt)
	})

	t.Run("other operator is denied", func(t *testing.T) {
		_, _, err := machine.Transition(orderAt(t, order.Confirmed), store, actor(t, kernel.RoleOperator, 401),
			order.PickedUp, "", now)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("location of another order is denied", func(t *testing.T) {
		other := activeSiteAt(t, 5, 1)

		_, _, err := machine.Transition(orderAt(t, order.Confirmed), other, actor(t, kernel.RoleOperator, 500),
			order.PickedUp, "", now)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
	})

	t.Run("off-graph edge", func(t *testing.T) {
		_, _, err := machine.Transition(orderAt(t, order.Pending), store, owner, order.Delivered, "", now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, _, err := machine.Transition(orderAt(t, order.Pending), store, owner, order.Status("done"), "", now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("customer may only cancel", func(t *testing.T) {
		customer := actor(t, kernel.RoleCustomer, 10)

		_, _, err := machine.Transition(orderAt(t, order.Pending), nil, customer, order.Confirmed, "", now)
		require.ErrorIs(t, err, errs.ErrAccessDenied)

		next, changed, err := machine.Transition(orderAt(t, order.Pending), nil, customer, order.Cancelled, "", now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, order.Cancelled, next.Status())
	})
}

func TestStatusMachine_Cancel(t *testing.T) {
	machine := services.NewStatusMachine()
	customer := actor(t, kernel.RoleCustomer, 10)

	for _, s := range order.Statuses() {
		next, err := machine.Cancel(orderAt(t, s), customer, now)
		if s.IsCustomerModifiable() {
			require.NoError(t, err, s)
			assert.Equal(t, order.Cancelled, next.Status())
			continue
		}
		require.ErrorIs(t, err, errs.ErrInvalidTransition, s)
		assert.Contains(t, err.Error(), "Order cannot be modified at this stage")
	}

	_, err := machine.Cancel(orderAt(t, order.Pending), actor(t, kernel.RoleCustomer, 11), now)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStatusMachine_Reschedule(t *testing.T) {
	machine := services.NewStatusMachine()
	customer := actor(t, kernel.RoleCustomer, 10)
	window, _ := kernel.NewPickupWindow(now.Add(24*time.Hour), now.Add(26*time.Hour))

	o := orderAt(t, order.Confirmed)
	require.NoError(t, machine.Reschedule(o, customer, window, now))
	assert.Equal(t, window, o.Window())

	err := machine.Reschedule(orderAt(t, order.Delivered), customer, window, now)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	err = machine.Reschedule(orderAt(t, order.Pending), actor(t, kernel.RoleCustomer, 99), window, now)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
