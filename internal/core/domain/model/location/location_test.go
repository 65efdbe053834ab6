package location_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/location"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreLocation(t *testing.T) {
	point, _ := kernel.NewGeoPoint(12.97, 77.59)

	t.Run("valid location", func(t *testing.T) {
		l, err := location.RestoreLocation(4, 7, " Indiranagar ", &point, true, false)

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.Equal(t, "Indiranagar", l.Name())
		assert.True(t, l.IsOperatedBy(7))
		assert.False(t, l.IsOperatedBy(8))
		assert.Equal(t, point, *l.Point())
	})

	t.Run("invalid ids", func(t *testing.T) {
		_, err := location.RestoreLocation(0, -1, "x", nil, true, false)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "location id")
		assert.Contains(t, err.Error(), "operator id")
	})
}

func TestLocation_IsEligible(t *testing.T) {
	point, _ := kernel.NewGeoPoint(12.97, 77.59)

	tests := []struct {
		name     string
		point    *kernel.GeoPoint
		active   bool
		locked   bool
		eligible bool
	}{
		{name: "active unlocked with coordinate", point: &point, active: true, eligible: true},
		{name: "inactive", point: &point, active: false},
		{name: "admin locked", point: &point, active: true, locked: true},
		{name: "no coordinate", point: nil, active: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := location.RestoreLocation(1, 1, "s", tt.point, tt.active, tt.locked)
			require.NoError(t, err)

			assert.Equal(t, tt.eligible, l.IsEligible())
		})
	}
}
