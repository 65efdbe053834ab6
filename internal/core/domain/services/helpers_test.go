package services_test

import (
	"math"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/location"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

// east returns a point km kilometres east of origin along the equator.
func east(t *testing.T, km float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(0, km/kernel.EarthRadiusKm*180/math.Pi)
	require.NoError(t, err)
	return p
}

func origin(t *testing.T) kernel.GeoPoint {
	t.Helper()
	return east(t, 0)
}

func site(t *testing.T, id int64, p *kernel.GeoPoint, active, locked bool) *location.Location {
	t.Helper()
	l, err := location.RestoreLocation(id, id*100, "store", p, active, locked)
	require.NoError(t, err)
	return l
}

func activeSiteAt(t *testing.T, id int64, km float64) *location.Location {
	t.Helper()
	p := east(t, km)
	return site(t, id, &p, true, false)
}

func orderAt(t *testing.T, status order.Status, items ...*order.Item) *order.Order {
	t.Helper()
	w, err := kernel.NewPickupWindow(now.Add(time.Hour), now.Add(3*time.Hour))
	require.NoError(t, err)
	if len(items) == 0 {
		item, itemErr := order.RestoreItem(1, 3, 2, nil)
		require.NoError(t, itemErr)
		items = []*order.Item{item}
	}
	o, err := order.RestoreOrder(order.Snapshot{
		ID: 7, CustomerID: 10, LocationID: 4, Window: w, Status: status,
		PaymentMode: order.PaymentModeCash, Items: items, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	return o
}

func actor(t *testing.T, role kernel.Role, id int64) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}
