package services

import (
	"errors"
	"math"
	"slices"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/location"

	"github.com/shopspring/decimal"
)

// DefaultRadiusKm is used when no positive radius is configured.
const DefaultRadiusKm = 3.0

// ErrNoStoreAvailable is returned when no eligible location lies within the radius.
var ErrNoStoreAvailable = errors.New("no stores available in your area")

// Match is the location chosen for a booking and its distance from the address.
type Match struct {
	Location   *location.Location
	DistanceKm float64
}

// GeoMatcher selects the nearest eligible location for a coordinate.
//
// Selection rules:
//   - Only active, unlocked locations with a coordinate are considered
//   - Locations farther than the radius are dropped
//   - The smallest distance wins; ties go to the lowest location id
//
// Example:
//
//	match, err := services.NewGeoMatcher().FindNearest(point, candidates, radius)
//	if errors.Is(err, services.ErrNoStoreAvailable) {
//	    // abort the booking transaction
//	}
type GeoMatcher struct{}

func NewGeoMatcher() GeoMatcher {
	return GeoMatcher{}
}

// FindNearest returns the nearest eligible candidate within radiusKm of target.
// A non-positive radius falls back to DefaultRadiusKm.
func (g GeoMatcher) FindNearest(
	target kernel.GeoPoint,
	candidates []*location.Location,
	radiusKm float64,
) (Match, error) {
	if err := target.Validate(); err != nil {
		return Match{}, err
	}
	if radiusKm <= 0 || math.IsNaN(radiusKm) {
		radiusKm = DefaultRadiusKm
	}

	matches := make([]Match, 0, len(candidates))
	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return Match{}, err
		}
		if !candidate.IsEligible() {
			continue
		}

		d, err := target.DistanceKm(*candidate.Point())
		if err != nil {
			return Match{}, err
		}
		if d <= radiusKm {
			matches = append(matches, Match{Location: candidate, DistanceKm: d})
		}
	}

	if len(matches) == 0 {
		return Match{}, ErrNoStoreAvailable
	}

	return slices.MinFunc(matches, compareMatches), nil
}

func compareMatches(a, b Match) int {
	switch {
	case a.DistanceKm < b.DistanceKm:
		return -1
	case a.DistanceKm > b.DistanceKm:
		return 1
	case a.Location.ID() < b.Location.ID():
		return -1
	case a.Location.ID() > b.Location.ID():
		return 1
	default:
		return 0
	}
}

// ParseRadius reads the stored nearby radius setting. Missing, non-numeric and
// non-positive values all yield DefaultRadiusKm.
func ParseRadius(raw string, found bool) float64 {
	if !found {
		return DefaultRadiusKm
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		return DefaultRadiusKm
	}
	return d.InexactFloat64()
}
