// Package metrics provides Prometheus metrics for keystash.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the Prometheus registry for all keystash metrics.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// RepoMetrics holds counters for the repository side: writes, page fetches,
// skipped entries and deletes.
type RepoMetrics struct {
	Writes         prometheus.Counter
	WriteErrors    prometheus.Counter
	ListPages      prometheus.Counter
	EntriesSkipped prometheus.Counter
	Deletes        prometheus.Counter
	DeleteFailures prometheus.Counter
}

// InitRepoMetrics registers repository counters with reg. Pass Registry for
// production use; tests use a throwaway registry.
func InitRepoMetrics(reg prometheus.Registerer) *RepoMetrics {
	return &RepoMetrics{
		Writes: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "keystash_writes_total",
			Help: "Total parameter writes issued",
		}),
		WriteErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "keystash_write_errors_total",
			Help: "Total parameter writes that failed remotely",
		}),
		ListPages: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "keystash_list_pages_total",
			Help: "Total list pages fetched",
		}),
		EntriesSkipped: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "keystash_entries_skipped_total",
			Help: "Total listed entries dropped because their value failed to parse",
		}),
		Deletes: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "keystash_deletes_total",
			Help: "Total parameter deletes that succeeded",
		}),
		DeleteFailures: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "keystash_delete_failures_total",
			Help: "Total parameter deletes that failed and aborted a batch",
		}),
	}
}

// ServerMetrics holds counters for the parameter store server.
type ServerMetrics struct {
	Requests *prometheus.CounterVec // labels: method, status
	Entries  prometheus.Gauge
}

// InitServerMetrics registers server metrics with reg.
func InitServerMetrics(reg prometheus.Registerer) *ServerMetrics {
	return &ServerMetrics{
		Requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "keystash_server_requests_total",
			Help: "Total API requests handled",
		}, []string{"method", "status"}),
		Entries: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "keystash_server_entries",
			Help: "Number of parameters currently stored",
		}),
	}
}

// Handler returns an HTTP handler exposing Registry in Prometheus text
// format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
