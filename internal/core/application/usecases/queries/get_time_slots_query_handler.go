package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

const (
	firstSlotHour   = 10
	lastSlotHour    = 20
	slotLengthHours = 2
)

// GetTimeSlotsQueryHandler generates pickup slots. Slots start every two hours from
// 10:00 to 20:00 wall-clock time in the display zone. On the current day, slots that
// have already ended are left out.
type GetTimeSlotsQueryHandler struct {
	clock kernel.Clock
	zone  *time.Location
}

func NewGetTimeSlotsQueryHandler(clock kernel.Clock, zone *time.Location) GetTimeSlotsQueryHandler {
	if zone == nil {
		zone = time.UTC
	}
	return GetTimeSlotsQueryHandler{clock: clock, zone: zone}
}

func (h GetTimeSlotsQueryHandler) Handle(_ context.Context, query GetTimeSlotsQuery) ([]TimeSlot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now().In(h.zone)
	first := query.On(0, h.zone)
	isToday := first.Year() == now.Year() && first.YearDay() == now.YearDay()

	slots := make([]TimeSlot, 0, (lastSlotHour-firstSlotHour)/slotLengthHours+1)
	for hour := firstSlotHour; hour <= lastSlotHour; hour += slotLengthHours {
		start := query.On(hour, h.zone)
		end := query.On(hour+slotLengthHours, h.zone)
		if isToday && !end.After(now) {
			continue
		}

		window, err := kernel.NewPickupWindow(start, end)
		if err != nil {
			return nil, err
		}

		slots = append(slots, TimeSlot{
			Start:       window.Start(),
			End:         window.End(),
			Display:     window.Display(h.zone),
			IsAvailable: true,
		})
	}

	return slots, nil
}
