package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetStoreOrdersQueryIsNotConstructed = errors.New(
	"GetStoreOrdersQuery must be created via NewGetStoreOrdersQuery constructor",
)

// GetStoreOrdersQuery lists the orders of every store run by the operator,
// optionally narrowed to one status.
type GetStoreOrdersQuery struct {
	operator kernel.Actor
	status   *order.Status

	guard guard.ConstructorGuard
}

// NewGetStoreOrdersQuery builds the query. An empty rawStatus or "all" lists every status.
func NewGetStoreOrdersQuery(operator kernel.Actor, rawStatus string) (GetStoreOrdersQuery, error) {
	if err := operator.Validate(); err != nil {
		return GetStoreOrdersQuery{}, err
	}
	if !operator.IsOperator() {
		return GetStoreOrdersQuery{}, errs.NewAccessDeniedError("store orders", operator.String())
	}

	q := GetStoreOrdersQuery{operator: operator, guard: guard.NewConstructorGuard()}
	if rawStatus != "" && rawStatus != "all" {
		status, err := order.ParseStatus(rawStatus)
		if err != nil {
			return GetStoreOrdersQuery{}, err
		}
		q.status = &status
	}

	return q, nil
}

func (q GetStoreOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreOrdersQueryIsNotConstructed)
}

func (q GetStoreOrdersQuery) Operator() kernel.Actor {
	return q.operator
}

// Status is nil when every status is requested.
func (q GetStoreOrdersQuery) Status() *order.Status {
	if q.status == nil {
		return nil
	}
	s := *q.status
	return &s
}
