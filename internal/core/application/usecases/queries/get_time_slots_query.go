package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const dateLayout = "2006-01-02"

var ErrGetTimeSlotsQueryIsNotConstructed = errors.New(
	"GetTimeSlotsQuery must be created via NewGetTimeSlotsQuery constructor",
)

// GetTimeSlotsQuery asks for the pickup slots offered on a calendar date.
type GetTimeSlotsQuery struct {
	year  int
	month time.Month
	day   int

	guard guard.ConstructorGuard
}

// NewGetTimeSlotsQuery parses rawDate as YYYY-MM-DD.
func NewGetTimeSlotsQuery(rawDate string) (GetTimeSlotsQuery, error) {
	if rawDate == "" {
		return GetTimeSlotsQuery{}, errs.NewValueIsRequiredError("date")
	}

	d, err := time.Parse(dateLayout, rawDate)
	if err != nil {
		return GetTimeSlotsQuery{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}

	return GetTimeSlotsQuery{
		year:  d.Year(),
		month: d.Month(),
		day:   d.Day(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetTimeSlotsQuery) Validate() error {
	return q.guard.Validate(ErrGetTimeSlotsQueryIsNotConstructed)
}

// On returns the given hour of the requested date in loc.
func (q GetTimeSlotsQuery) On(hour int, loc *time.Location) time.Time {
	return time.Date(q.year, q.month, q.day, hour, 0, 0, 0, loc)
}

// TimeSlot is one bookable pickup window.
type TimeSlot struct {
	Start       time.Time
	End         time.Time
	Display     string
	IsAvailable bool
}
