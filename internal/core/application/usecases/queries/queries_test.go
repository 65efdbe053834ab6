package queries_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStoreOrdersQuery(t *testing.T) {
	operator, err := kernel.NewOperator(100)
	require.NoError(t, err)
	customer, err := kernel.NewCustomer(10)
	require.NoError(t, err)

	all, err := queries.NewGetStoreOrdersQuery(operator, "all")
	require.NoError(t, err)
	assert.Nil(t, all.Status())

	none, err := queries.NewGetStoreOrdersQuery(operator, "")
	require.NoError(t, err)
	assert.Nil(t, none.Status())

	ready, err := queries.NewGetStoreOrdersQuery(operator, "ready_for_delivery")
	require.NoError(t, err)
	require.NotNil(t, ready.Status())
	assert.Equal(t, order.ReadyForDelivery, *ready.Status())

	_, err = queries.NewGetStoreOrdersQuery(operator, "shipped")
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	_, err = queries.NewGetStoreOrdersQuery(customer, "")
	require.ErrorIs(t, err, errs.ErrAccessDenied)
}

func TestNewGetOrderDetailsQuery_Validation(t *testing.T) {
	customer, err := kernel.NewCustomer(10)
	require.NoError(t, err)

	_, err = queries.NewGetOrderDetailsQuery(customer, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetOrderDetailsQuery(kernel.Actor{}, 5)
	require.Error(t, err)
}

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetCustomerOrdersQuery{}.Validate(), queries.ErrGetCustomerOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetOrderDetailsQuery{}.Validate(), queries.ErrGetOrderDetailsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetStoreOrdersQuery{}.Validate(), queries.ErrGetStoreOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetNearbyRadiusQuery{}.Validate(), queries.ErrGetNearbyRadiusQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetCustomerNotificationsQuery{}.Validate(),
		queries.ErrGetCustomerNotificationsQueryIsNotConstructed)
	assert.NoError(t, queries.NewGetNearbyRadiusQuery().Validate())
}

func TestNewGetCustomerQueries_RejectInvalidCustomer(t *testing.T) {
	_, err := queries.NewGetCustomerOrdersQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetCustomerNotificationsQuery(-1, false)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetStoreTransactionsQuery(t *testing.T) {
	operator, err := kernel.NewOperator(100)
	require.NoError(t, err)
	customer, err := kernel.NewCustomer(10)
	require.NoError(t, err)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	byDefault, err := queries.NewGetStoreTransactionsQuery(operator, "", "", "")
	require.NoError(t, err)
	assert.Equal(t, 30, byDefault.Days())
	from, to := byDefault.Window(now, time.UTC)
	assert.True(t, from.Equal(now.AddDate(0, 0, -30)))
	assert.True(t, to.Equal(now))

	year, err := queries.NewGetStoreTransactionsQuery(operator, "365", "", "")
	require.NoError(t, err)
	assert.Equal(t, 365, year.Days())

	zone := time.FixedZone("IST", 5*3600+1800)
	ranged, err := queries.NewGetStoreTransactionsQuery(operator, "90", "2024-05-01", "2024-05-03")
	require.NoError(t, err)
	assert.Zero(t, ranged.Days())
	from, to = ranged.Window(now, zone)
	assert.True(t, from.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, zone)))
	assert.True(t, to.Equal(time.Date(2024, 5, 4, 0, 0, 0, 0, zone)))

	tests := []struct {
		name               string
		period, start, end string
		want               error
	}{
		{"unsupported period", "7", "", "", errs.ErrValueIsInvalid},
		{"start after end", "", "2024-05-03", "2024-05-01", errs.ErrValueIsInvalid},
		{"malformed start", "", "01/05/2024", "2024-05-03", errs.ErrValueIsInvalid},
		{"start without end", "", "2024-05-01", "", errs.ErrValueIsRequired},
		{"end without start", "", "", "2024-05-01", errs.ErrValueIsRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewGetStoreTransactionsQuery(operator, tt.period, tt.start, tt.end)
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err = queries.NewGetStoreTransactionsQuery(customer, "", "", "")
	require.ErrorIs(t, err, errs.ErrAccessDenied)

	require.ErrorIs(t,
		queries.GetStoreTransactionsQuery{}.Validate(),
		queries.ErrGetStoreTransactionsQueryIsNotConstructed)
}
