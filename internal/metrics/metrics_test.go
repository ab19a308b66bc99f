package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRepoMetrics(t *testing.T) {
	m := InitRepoMetrics(prometheus.NewRegistry())
	require.NotNil(t, m)

	m.Writes.Inc()
	m.Writes.Inc()
	m.EntriesSkipped.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Writes))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntriesSkipped))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Deletes))
}

func TestInitServerMetrics(t *testing.T) {
	m := InitServerMetrics(prometheus.NewRegistry())
	require.NotNil(t, m)

	m.Requests.WithLabelValues("GET", "OK").Inc()
	m.Entries.Set(7)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "OK")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.Entries))
}

func TestHandlerServesRegistry(t *testing.T) {
	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
