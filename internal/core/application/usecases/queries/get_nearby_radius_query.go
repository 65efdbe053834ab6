package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetNearbyRadiusQueryIsNotConstructed = errors.New(
	"GetNearbyRadiusQuery must be created via NewGetNearbyRadiusQuery constructor",
)

// ErrNearbyRadiusNotSet is the cause reported when the setting was never written.
var ErrNearbyRadiusNotSet = errors.New("nearby radius setting not found")

type GetNearbyRadiusQuery struct {
	guard guard.ConstructorGuard
}

func NewGetNearbyRadiusQuery() GetNearbyRadiusQuery {
	return GetNearbyRadiusQuery{guard: guard.NewConstructorGuard()}
}

func (q GetNearbyRadiusQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyRadiusQueryIsNotConstructed)
}

// NearbyRadiusView is the stored value and the radius the matcher will actually use.
type NearbyRadiusView struct {
	Key      string
	Value    string
	RadiusKm float64
}
