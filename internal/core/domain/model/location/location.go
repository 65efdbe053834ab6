// Package location models a fulfillment site ("store") that orders are assigned to.
package location

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var ErrLocationIsNotConstructed = errors.New("Location must be created via RestoreLocation constructor")

// Location is a fulfillment site owned by one operator. Locations are administered
// outside the engine, so they are only ever restored from storage.
type Location struct {
	id            int64
	operatorID    int64
	name          string
	point         *kernel.GeoPoint
	isActive      bool
	adminLocked   bool
	isConstructed bool
}

// RestoreLocation rebuilds a location from storage. point is nil when the site has no coordinate.
func RestoreLocation(
	id, operatorID int64,
	name string,
	point *kernel.GeoPoint,
	isActive, adminLocked bool,
) (*Location, error) {
	l := &Location{
		name:          strings.TrimSpace(name),
		isActive:      isActive,
		adminLocked:   adminLocked,
		isConstructed: true,
	}

	var idErr, operatorErr, pointErr error
	if id <= 0 {
		idErr = errs.NewValueIsInvalidErrorWithCause("location id", fmt.Errorf("%d is not greater than 0", id))
	}
	if operatorID <= 0 {
		operatorErr = errs.NewValueIsInvalidErrorWithCause("operator id", fmt.Errorf("%d is not greater than 0", operatorID))
	}
	if point != nil {
		pointErr = point.Validate()
	}
	if err := errors.Join(idErr, operatorErr, pointErr); err != nil {
		return nil, err
	}

	l.id = id
	l.operatorID = operatorID
	if point != nil {
		p := *point
		l.point = &p
	}
	return l, nil
}

func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

func (l *Location) ID() int64 {
	return l.id
}

func (l *Location) OperatorID() int64 {
	return l.operatorID
}

func (l *Location) Name() string {
	return l.name
}

// Point returns the site coordinate, or nil when unknown.
func (l *Location) Point() *kernel.GeoPoint {
	if l.point == nil {
		return nil
	}
	p := *l.point
	return &p
}

func (l *Location) IsActive() bool {
	return l.isActive
}

func (l *Location) IsAdminLocked() bool {
	return l.adminLocked
}

// IsEligible reports whether the site can receive new bookings:
// active, not locked by an administrator and with a known coordinate.
func (l *Location) IsEligible() bool {
	return l.isActive && !l.adminLocked && l.point != nil
}

// IsOperatedBy reports whether operatorID owns the site.
func (l *Location) IsOperatedBy(operatorID int64) bool {
	return l.operatorID == operatorID
}
