// Package guard protects value objects, commands and queries from being used as
// zero values: a struct embedding a ConstructorGuard is only valid when it was
// built by its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built through its constructor.
//
// Example:
//
//	type ServiceSelection struct {
//	    serviceID int64
//	    guard     guard.ConstructorGuard
//	}
//
//	func (s ServiceSelection) Validate() error {
//	    return s.guard.Validate(ErrServiceSelectionIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
