package services

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/location"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// StatusMachine decides who may change an order and applies the change through
// order.ApplyTransition.
//
// Authorization rules:
//   - The operator owning the order's location may drive any graph edge, cancel included
//   - Any other operator is denied
//   - The customer who booked the order may only cancel or reschedule, and only
//     while it is pending or confirmed
//   - Orders of other customers are reported as not found
type StatusMachine struct{}

func NewStatusMachine() StatusMachine {
	return StatusMachine{}
}

// Transition is the operator path. It returns the updated order and whether its
// status changed; notes are appended even when the status did not change.
func (m StatusMachine) Transition(
	o *order.Order,
	loc *location.Location,
	actor kernel.Actor,
	to order.Status,
	notes string,
	at time.Time,
) (*order.Order, bool, error) {
	if err := o.Validate(); err != nil {
		return nil, false, err
	}
	if err := actor.Validate(); err != nil {
		return nil, false, err
	}
	if err := to.Validate(); err != nil {
		return nil, false, err
	}

	if actor.IsCustomer() {
		if to != order.Cancelled {
			return nil, false, errs.NewAccessDeniedError("order", o.ID())
		}
		next, err := m.Cancel(o, actor, at)
		return next, err == nil, err
	}

	if err := m.authorizeOperator(o, loc, actor); err != nil {
		return nil, false, err
	}

	next, changed, err := order.ApplyTransition(o, to, at)
	if err != nil {
		return nil, false, err
	}
	next.AppendNotes(notes, at)
	return next, changed, nil
}

// Cancel is the customer path for cancelling a pending or confirmed order.
func (m StatusMachine) Cancel(o *order.Order, actor kernel.Actor, at time.Time) (*order.Order, error) {
	if err := m.authorizeCustomer(o, actor); err != nil {
		return nil, err
	}
	if err := o.EnsureCustomerModifiable(); err != nil {
		return nil, err
	}

	next, _, err := order.ApplyTransition(o, order.Cancelled, at)
	return next, err
}

// Reschedule is the customer path for moving the pickup window of a pending or confirmed order.
func (m StatusMachine) Reschedule(o *order.Order, actor kernel.Actor, window kernel.PickupWindow, at time.Time) error {
	if err := m.authorizeCustomer(o, actor); err != nil {
		return err
	}
	return o.Reschedule(window, at)
}

// AuthorizeOperator checks that actor operates the location the order is assigned to.
func (m StatusMachine) AuthorizeOperator(o *order.Order, loc *location.Location, actor kernel.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return m.authorizeOperator(o, loc, actor)
}

func (m StatusMachine) authorizeOperator(o *order.Order, loc *location.Location, actor kernel.Actor) error {
	if !actor.IsOperator() {
		return errs.NewAccessDeniedError("order", o.ID())
	}
	if err := loc.Validate(); err != nil {
		return err
	}
	if loc.ID() != o.LocationID() || !loc.IsOperatedBy(actor.ID()) {
		return errs.NewAccessDeniedError("order", o.ID())
	}
	return nil
}

func (m StatusMachine) authorizeCustomer(o *order.Order, actor kernel.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsCustomer() || !o.IsOwnedBy(actor.ID()) {
		return errs.NewObjectNotFoundError("order", o.ID())
	}
	return nil
}
