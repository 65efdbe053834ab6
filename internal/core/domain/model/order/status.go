package order

import (
	"fmt"
	"slices"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	pending ─> confirmed ─> picked_up ─> processing ─> ready_for_delivery ─> out_for_delivery ─> delivered
//	   │           │
//	   └───────────┴─> cancelled
//
// delivered and cancelled are terminal.
type Status string

const (
	Pending          Status = "pending"
	Confirmed        Status = "confirmed"
	PickedUp         Status = "picked_up"
	Processing       Status = "processing"
	ReadyForDelivery Status = "ready_for_delivery"
	OutForDelivery   Status = "out_for_delivery"
	Delivered        Status = "delivered"
	Cancelled        Status = "cancelled"
)

// ReasonNotModifiable is reported when a customer acts on an order outside pending/confirmed.
const ReasonNotModifiable = "Order cannot be modified at this stage"

var allStatuses = []Status{
	Pending, Confirmed, PickedUp, Processing, ReadyForDelivery, OutForDelivery, Delivered, Cancelled,
}

var transitions = map[Status][]Status{
	Pending:          {Confirmed, Cancelled},
	Confirmed:        {PickedUp, Cancelled},
	PickedUp:         {Processing},
	Processing:       {ReadyForDelivery},
	ReadyForDelivery: {OutForDelivery},
	OutForDelivery:   {Delivered},
}

// Statuses returns every known status in lifecycle order.
func Statuses() []Status {
	return slices.Clone(allStatuses)
}

// ParseStatus converts raw input into a Status. Unknown values are reported as an
// invalid transition, matching how the API surfaces them.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks that s is one of the declared statuses.
func (s Status) Validate() error {
	if slices.Contains(allStatuses, s) {
		return nil
	}

	names := make([]string, len(allStatuses))
	for i, st := range allStatuses {
		names[i] = string(st)
	}
	return errs.NewInvalidTransitionError("", string(s),
		fmt.Sprintf("Invalid status. Valid statuses: %s", strings.Join(names, ", ")))
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsCustomerModifiable reports whether a customer may still cancel or reschedule.
func (s Status) IsCustomerModifiable() bool {
	return s == Pending || s == Confirmed
}

// CanTransitionTo reports whether to is a direct successor of s in the graph.
func (s Status) CanTransitionTo(to Status) bool {
	return slices.Contains(transitions[s], to)
}

// ValidateTransition returns an InvalidTransitionError unless to equals s or is a direct successor.
func (s Status) ValidateTransition(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if s == to || s.CanTransitionTo(to) {
		return nil
	}
	return errs.NewInvalidTransitionError(string(s), string(to),
		fmt.Sprintf("Order cannot move from %s to %s", s, to))
}
