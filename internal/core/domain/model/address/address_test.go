package address_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/address"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_Snapshot(t *testing.T) {
	point, _ := kernel.NewGeoPoint(12.97, 77.59)

	t.Run("copies line and coordinate", func(t *testing.T) {
		a, err := address.RestoreAddress(5, 10, "12 MG Road", &point)
		require.NoError(t, err)

		snap, err := a.Snapshot()

		require.NoError(t, err)
		assert.Equal(t, int64(5), snap.AddressID())
		assert.Equal(t, "12 MG Road", snap.Line())
		assert.Equal(t, point, snap.Point())
		assert.True(t, a.BelongsTo(10))
		assert.False(t, a.BelongsTo(11))
	})

	t.Run("fails without coordinate", func(t *testing.T) {
		a, err := address.RestoreAddress(5, 10, "12 MG Road", nil)
		require.NoError(t, err)

		_, err = a.Snapshot()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
