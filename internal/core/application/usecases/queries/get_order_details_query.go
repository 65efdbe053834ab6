package queries

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery reads one order as seen by actor: customers see their own
// orders, operators see the orders of the stores they run.
type GetOrderDetailsQuery struct {
	actor   kernel.Actor
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(actor kernel.Actor, orderID int64) (GetOrderDetailsQuery, error) {
	var idErr error
	if orderID <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not a valid id", orderID))
	}
	if err := errors.Join(actor.Validate(), idErr); err != nil {
		return GetOrderDetailsQuery{}, err
	}

	return GetOrderDetailsQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) Actor() kernel.Actor {
	return q.actor
}

func (q GetOrderDetailsQuery) OrderID() int64 {
	return q.orderID
}
