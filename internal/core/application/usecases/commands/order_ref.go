package commands

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

func validateOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not a valid id", orderID))
	}
	return nil
}
