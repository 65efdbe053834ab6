package queries

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery lists every order of one customer, newest first.
type GetCustomerOrdersQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

func NewGetCustomerOrdersQuery(customerID int64) (GetCustomerOrdersQuery, error) {
	if customerID <= 0 {
		return GetCustomerOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("customerId",
			fmt.Errorf("%d is not a valid id", customerID))
	}

	return GetCustomerOrdersQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) CustomerID() int64 {
	return q.customerID
}
