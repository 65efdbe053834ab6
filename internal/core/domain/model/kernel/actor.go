package kernel

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Role identifies the kind of principal acting on an order.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleOperator Role = "operator"
)

// ErrActorIsNotConstructed is returned when a zero value Actor is used.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via NewActor constructor")

// Actor is an already authenticated principal: a customer owning orders or an
// operator owning fulfillment locations.
type Actor struct { //nolint:recvcheck //using for validation
	id    int64
	role  Role
	guard guard.ConstructorGuard
}

func NewActor(id int64, role Role) (Actor, error) {
	a := Actor{guard: guard.NewConstructorGuard()}

	if err := errors.Join(a.setID(id), a.setRole(role)); err != nil {
		return Actor{}, err
	}

	return a, nil
}

// NewCustomer is a shorthand for NewActor(id, RoleCustomer).
func NewCustomer(id int64) (Actor, error) {
	return NewActor(id, RoleCustomer)
}

// NewOperator is a shorthand for NewActor(id, RoleOperator).
func NewOperator(id int64) (Actor, error) {
	return NewActor(id, RoleOperator)
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() int64 {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsCustomer() bool {
	return a.role == RoleCustomer
}

func (a Actor) IsOperator() bool {
	return a.role == RoleOperator
}

func (a Actor) String() string {
	return fmt.Sprintf("%s:%d", a.role, a.id)
}

// ParseRole converts a token claim into a Role.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleCustomer, RoleOperator:
		return Role(raw), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", raw))
	}
}

func (a *Actor) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("actor id", fmt.Errorf("%d is not greater than 0", id))
	}
	a.id = id
	return nil
}

func (a *Actor) setRole(role Role) error {
	if _, err := ParseRole(string(role)); err != nil {
		return err
	}
	a.role = role
	return nil
}
