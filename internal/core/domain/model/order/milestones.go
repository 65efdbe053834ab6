package order

import "time"

// Milestones holds the instant each status was first reached.
// pending is covered by the order creation instant.
type Milestones struct {
	ConfirmedAt        *time.Time
	PickedUpAt         *time.Time
	ProcessingAt       *time.Time
	ReadyForDeliveryAt *time.Time
	OutForDeliveryAt   *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
}

// At returns the stamp recorded for s, or nil.
func (m Milestones) At(s Status) *time.Time {
	if slot := m.slot(s); slot != nil {
		return *slot
	}
	return nil
}

// stamp records at for s unless a stamp already exists. It reports whether it wrote.
func (m *Milestones) stamp(s Status, at time.Time) bool {
	slot := m.slot(s)
	if slot == nil || *slot != nil {
		return false
	}
	t := at.UTC()
	*slot = &t
	return true
}

func (m *Milestones) slot(s Status) **time.Time {
	switch s {
	case Confirmed:
		return &m.ConfirmedAt
	case PickedUp:
		return &m.PickedUpAt
	case Processing:
		return &m.ProcessingAt
	case ReadyForDelivery:
		return &m.ReadyForDeliveryAt
	case OutForDelivery:
		return &m.OutForDeliveryAt
	case Delivered:
		return &m.DeliveredAt
	case Cancelled:
		return &m.CancelledAt
	case Pending:
		return nil
	default:
		return nil
	}
}
