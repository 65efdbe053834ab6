package order

import "time"

// ApplyTransition moves o to status to and stamps the matching milestone if it
// has never been stamped. It never mutates o: the result is a new Order.
//
// Re-entering the current status returns an unchanged copy with changed == false.
// Any target that is not a direct successor in the lifecycle graph is rejected
// with errs.InvalidTransitionError.
func ApplyTransition(o *Order, to Status, at time.Time) (*Order, bool, error) {
	if err := o.Validate(); err != nil {
		return nil, false, err
	}
	if err := o.status.ValidateTransition(to); err != nil {
		return nil, false, err
	}

	next := o.clone()
	if o.status == to {
		return next, false, nil
	}

	next.status = to
	next.milestones.stamp(to, at)
	next.touch(at)
	return next, true, nil
}
