package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRescheduleOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	m := newOrderMocks()
	later, err := kernel.NewPickupWindow(now.Add(72*time.Hour), now.Add(74*time.Hour))
	require.NoError(t, err)

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.orders.On("GetForUpdate", ctx, int64(55)).Return(storedOrder(t, 55, order.Confirmed), nil).Once()
	m.orders.On("Update", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.Window().Start().Equal(later.Start()) && o.UpdatedAt().Equal(now)
	})).Return(nil).Once()
	m.uow.On("Commit", ctx).Return(nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()
	m.notifier.On("Dispatch", ctx, mock.MatchedBy(func(n notification.Notice) bool {
		return n.Title == "Order Rescheduled"
	})).Once()

	cmd, err := commands.NewRescheduleOrderCommand(customer(t, 10), 55, later)
	require.NoError(t, err)

	h := commands.NewRescheduleOrderCommandHandler(orderFactory{m.factory}, m.notifier, clock)
	o, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, o.Status())
	m.assert(t)
}

func TestRescheduleOrderCommandHandler_Handle_TooLate(t *testing.T) {
	ctx := t.Context()
	m := newOrderMocks()

	m.uow.On("Begin", ctx).Return(nil).Once()
	m.orders.On("GetForUpdate", ctx, int64(55)).Return(storedOrder(t, 55, order.PickedUp), nil).Once()
	m.uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewRescheduleOrderCommand(customer(t, 10), 55, window(t))
	require.NoError(t, err)

	h := commands.NewRescheduleOrderCommandHandler(orderFactory{m.factory}, m.notifier, clock)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "Order cannot be modified at this stage")
	m.assert(t)
}
