package metrics

import (
	"time"
)

// AppMetrics holds every metric exposed by the retrosynth service: the MCTS
// engine's own counters/histograms plus the ambient HTTP layer that serves
// it.
type AppMetrics struct {
	// HTTP layer (served by internal/interfaces/http)
	HTTPRequestsTotal   CounterVec
	HTTPRequestDuration HistogramVec

	// Engine — rollouts
	RolloutsTotal         CounterVec
	RolloutDuration       HistogramVec
	BuildTreeDuration     HistogramVec
	CycleRejectionsTotal  CounterVec

	// Engine — graph shape, sampled after each BuildTree
	DAGChemicals GaugeVec
	DAGReactions GaugeVec

	// Adapters (D1 chemistry, D2 price cache, D3 template corpus)
	AdapterCallDuration HistogramVec
	AdapterErrorsTotal  CounterVec

	// Price cache (D2)
	PriceCacheHitsTotal   CounterVec
	PriceCacheMissesTotal CounterVec
}

// Default Buckets
var (
	DefaultHTTPDurationBuckets    = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	DefaultRolloutDurationBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 5}
	DefaultBuildDurationBuckets   = []float64{.1, .5, 1, 2, 5, 10, 20, 30, 60}
	DefaultAdapterDurationBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}
)

// NewAppMetrics registers every metric and returns the populated AppMetrics.
func NewAppMetrics(collector MetricsCollector) *AppMetrics {
	m := &AppMetrics{}

	// HTTP
	m.HTTPRequestsTotal = collector.RegisterCounter("http_requests_total", "Total HTTP requests", "method", "path", "status_code")
	m.HTTPRequestDuration = collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration", DefaultHTTPDurationBuckets, "method", "path")

	// Rollouts
	m.RolloutsTotal = collector.RegisterCounter("rollouts_total", "Total MCTS rollouts executed", "outcome")
	m.RolloutDuration = collector.RegisterHistogram("rollout_duration_seconds", "Duration of a single select-expand-update rollout", DefaultRolloutDurationBuckets)
	m.BuildTreeDuration = collector.RegisterHistogram("build_tree_duration_seconds", "Total wall-clock time of a BuildTree run", DefaultBuildDurationBuckets)
	m.CycleRejectionsTotal = collector.RegisterCounter("cycle_rejections_total", "Expansion outcomes discarded for introducing a cycle")

	// Graph shape
	m.DAGChemicals = collector.RegisterGauge("dag_chemicals", "Chemical nodes in the graph store after the last BuildTree")
	m.DAGReactions = collector.RegisterGauge("dag_reactions", "Reaction nodes in the graph store after the last BuildTree")

	// Adapters
	m.AdapterCallDuration = collector.RegisterHistogram("adapter_call_duration_seconds", "Chemistry adapter call duration", DefaultAdapterDurationBuckets, "adapter", "method")
	m.AdapterErrorsTotal = collector.RegisterCounter("adapter_errors_total", "Adapter calls that returned an error", "adapter", "method")

	// Price cache
	m.PriceCacheHitsTotal = collector.RegisterCounter("price_cache_hits_total", "Price lookups served from cache")
	m.PriceCacheMissesTotal = collector.RegisterCounter("price_cache_misses_total", "Price lookups that missed cache and hit the oracle")

	return m
}

// RegisterAppMetrics is an alias for NewAppMetrics.
func RegisterAppMetrics(collector MetricsCollector) *AppMetrics {
	return NewAppMetrics(collector)
}

// Helpers

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(metrics *AppMetrics, method, path string, statusCode int, duration time.Duration) {
	status := httpStatusLabel(statusCode)
	metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordRollout records the outcome and duration of a single rollout.
func RecordRollout(metrics *AppMetrics, outcome string, duration time.Duration) {
	metrics.RolloutsTotal.WithLabelValues(outcome).Inc()
	metrics.RolloutDuration.WithLabelValues().Observe(duration.Seconds())
}

// RecordBuildTree records the total duration of one BuildTree invocation and
// the resulting graph shape.
func RecordBuildTree(metrics *AppMetrics, duration time.Duration, chemicals, reactions int) {
	metrics.BuildTreeDuration.WithLabelValues().Observe(duration.Seconds())
	metrics.DAGChemicals.WithLabelValues().Set(float64(chemicals))
	metrics.DAGReactions.WithLabelValues().Set(float64(reactions))
}

// RecordCycleRejection records an expansion outcome discarded by the
// cycle-prevention guard.
func RecordCycleRejection(metrics *AppMetrics) {
	metrics.CycleRejectionsTotal.WithLabelValues().Inc()
}

// RecordAdapterCall records one chemistry-adapter method invocation.
func RecordAdapterCall(metrics *AppMetrics, adapter, method string, duration time.Duration, err error) {
	metrics.AdapterCallDuration.WithLabelValues(adapter, method).Observe(duration.Seconds())
	if err != nil {
		metrics.AdapterErrorsTotal.WithLabelValues(adapter, method).Inc()
	}
}

// RecordPriceCacheAccess records a price-cache hit or miss.
func RecordPriceCacheAccess(metrics *AppMetrics, hit bool) {
	if hit {
		metrics.PriceCacheHitsTotal.WithLabelValues().Inc()
	} else {
		metrics.PriceCacheMissesTotal.WithLabelValues().Inc()
	}
}

func httpStatusLabel(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

//Personal.AI order the ending
