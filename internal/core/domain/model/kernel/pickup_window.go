package kernel

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrPickupWindowIsNotConstructed is returned when a zero value PickupWindow is used.
var ErrPickupWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"pickup window must be created via NewPickupWindow constructor")

const displayClock = "03:04 PM"

// PickupWindow is the pair of instants between which a pickup is expected.
// Both instants are stored in UTC. The end is not required to follow the start.
type PickupWindow struct { //nolint:recvcheck //using for validation
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewPickupWindow creates a PickupWindow. Both instants are required; they are
// normalized to UTC without changing the instant they denote.
func NewPickupWindow(start, end time.Time) (PickupWindow, error) {
	w := PickupWindow{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(w.setStart(start), w.setEnd(end)); err != nil {
		return PickupWindow{}, err
	}

	return w, nil
}

func (w PickupWindow) Validate() error {
	return w.guard.Validate(ErrPickupWindowIsNotConstructed)
}

func (w PickupWindow) Start() time.Time {
	return w.start
}

func (w PickupWindow) End() time.Time {
	return w.end
}

// Display renders the window as wall-clock times in loc, e.g. "10:00 AM - 12:00 PM".
// The stored instants are not modified.
func (w PickupWindow) Display(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return fmt.Sprintf("%s - %s", w.start.In(loc).Format(displayClock), w.end.In(loc).Format(displayClock))
}

func (w *PickupWindow) setStart(start time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("pickupSlotStart")
	}
	w.start = start.UTC()
	return nil
}

func (w *PickupWindow) setEnd(end time.Time) error {
	if end.IsZero() {
		return errs.NewValueIsRequiredError("pickupSlotEnd")
	}
	w.end = end.UTC()
	return nil
}
