package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counters and histograms for the simulation service, registered against
// the default Prometheus registry.
var (
	// Simulations counts simulation requests by mode ("single"/"multi")
	// and outcome ("ok"/"fallback"/"error").
	Simulations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "astroguard_simulations_total",
		Help: "Total simulation requests, labeled by mode and outcome.",
	}, []string{"mode", "outcome"})

	// SimulationDuration tracks end-to-end simulation latency including
	// upstream fetches.
	SimulationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "astroguard_simulation_duration_seconds",
		Help:    "Simulation request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	})

	// UpstreamRequests counts outbound API calls by upstream
	// ("sentry"/"sbdb"/"neows"/"usgs"/"open-meteo") and outcome.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "astroguard_upstream_requests_total",
		Help: "Outbound upstream API calls, labeled by API and outcome.",
	}, []string{"api", "outcome"})

	// CacheEvents counts upstream-response cache lookups by result
	// ("hit"/"miss").
	CacheEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "astroguard_cache_events_total",
		Help: "Upstream response cache lookups, labeled by result.",
	}, []string{"result"})
)

// Handler exposes the default registry for the /metrics route.
func Handler() http.Handler {
	return promhttp.Handler()
}
