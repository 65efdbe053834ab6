package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fulfillment/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NotificationFailed(t *testing.T) {
	m := metrics.New()

	m.NotificationFailed("store")
	m.NotificationFailed("publish")
	m.NotificationFailed("publish")

	expected := `
# HELP fulfillment_notifications_failed_total Notifications that could not be stored or published, by stage.
# TYPE fulfillment_notifications_failed_total counter
fulfillment_notifications_failed_total{stage="publish"} 2
fulfillment_notifications_failed_total{stage="store"} 1
`
	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "fulfillment_notifications_failed_total")
	require.NoError(t, err)
}

func TestMetrics_ObserveHTTP(t *testing.T) {
	m := metrics.New()

	m.ObserveHTTP(http.MethodPost, "/booking/book", http.StatusCreated, 12*time.Millisecond)
	m.ObserveHTTP(http.MethodPost, "/booking/book", http.StatusCreated, 30*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/orders", http.StatusOK, time.Millisecond)

	count, err := testutil.GatherAndCount(m.Registry(), "fulfillment_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(m.Registry(), "fulfillment_http_request_duration_ms")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.NotificationDelivered()
	m.NotificationsPurged(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "fulfillment_notifications_sent_total 1")
	assert.Contains(t, string(body), "fulfillment_notifications_purged_total 3")
	assert.Contains(t, string(body), "go_goroutines")
}
