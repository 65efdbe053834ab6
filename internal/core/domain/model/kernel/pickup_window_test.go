package kernel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

func TestNewPickupWindow(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)

	t.Run("normalizes instants to UTC", func(t *testing.T) {
		start := time.Date(2024, 1, 10, 15, 30, 0, 0, kolkata)
		end := start.Add(2 * time.Hour)

		w, err := kernel.NewPickupWindow(start, end)

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.Equal(t, time.UTC, w.Start().Location())
		assert.True(t, w.Start().Equal(start))
		assert.Equal(t, time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC), w.Start())
		assert.Equal(t, time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC), w.End())
	})

	t.Run("end before start is accepted", func(t *testing.T) {
		start := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

		_, err := kernel.NewPickupWindow(start, start.Add(-time.Hour))

		require.NoError(t, err)
	})

	t.Run("missing instants are reported together", func(t *testing.T) {
		_, err := kernel.NewPickupWindow(time.Time{}, time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "pickupSlotStart")
		assert.Contains(t, err.Error(), "pickupSlotEnd")
	})
}

func TestPickupWindow_Display(t *testing.T) {
	w, _ := kernel.NewPickupWindow(
		time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	)
	kolkata := time.FixedZone("IST", 5*3600+1800)

	assert.Equal(t, "03:30 PM - 05:30 PM", w.Display(kolkata))
	assert.Equal(t, "10:00 AM - 12:00 PM", w.Display(nil))
	assert.Equal(t, time.UTC, w.Start().Location(), "display must not change stored instants")
}

func TestPickupWindow_Validate(t *testing.T) {
	var w kernel.PickupWindow

	require.ErrorIs(t, w.Validate(), errs.ErrValueIsRequired)
}
