package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateNearbyRadiusCommandIsNotConstructed = errors.New(
	"UpdateNearbyRadiusCommand must be created via NewUpdateNearbyRadiusCommand constructor",
)

// UpdateNearbyRadiusCommand sets the booking search radius in kilometres.
type UpdateNearbyRadiusCommand struct { //nolint:recvcheck //using for validation
	operator kernel.Actor
	radiusKm decimal.Decimal

	guard guard.ConstructorGuard
}

func NewUpdateNearbyRadiusCommand(operator kernel.Actor, radiusKm decimal.Decimal) (UpdateNearbyRadiusCommand, error) {
	var roleErr, radiusErr error
	if err := operator.Validate(); err != nil {
		roleErr = err
	} else if !operator.IsOperator() {
		roleErr = errs.NewAccessDeniedError("setting", operator.String())
	}
	if !radiusKm.IsPositive() {
		radiusErr = errs.NewValueIsInvalidErrorWithCause("radiusKm", fmt.Errorf("%s is not a positive number", radiusKm))
	}
	if err := errors.Join(roleErr, radiusErr); err != nil {
		return UpdateNearbyRadiusCommand{}, err
	}

	return UpdateNearbyRadiusCommand{
		operator: operator,
		radiusKm: radiusKm,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateNearbyRadiusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateNearbyRadiusCommandIsNotConstructed)
}

func (c UpdateNearbyRadiusCommand) RadiusKm() decimal.Decimal {
	return c.radiusKm
}
