package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusHooks implements ResolveHooks, CacheHooks and HTTPHooks on
// Prometheus collectors.
//
//	reg := prometheus.NewRegistry()
//	hooks := observability.NewPrometheusHooks(reg)
//	observability.SetResolveHooks(hooks)
//	observability.SetCacheHooks(hooks)
//	observability.SetHTTPHooks(hooks)
//	defer prometheus.WriteToTextfile(path, reg)
type PrometheusHooks struct {
	resolveTotal    *prometheus.CounterVec
	resolveErrors   *prometheus.CounterVec
	resolveDuration *prometheus.HistogramVec
	dependencies    *prometheus.CounterVec

	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
	cacheBytes  *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpErrors   *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewPrometheusHooks creates the collectors and registers them with reg.
// It panics if registration fails, like prometheus.MustRegister.
func NewPrometheusHooks(reg prometheus.Registerer) *PrometheusHooks {
	h := &PrometheusHooks{
		resolveTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freshdeps_resolve_total",
				Help: "Number of configuration resolutions by revision.",
			},
			[]string{"configuration", "revision"},
		),
		resolveErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freshdeps_resolve_error_total",
				Help: "Number of failed configuration resolutions by revision.",
			},
			[]string{"configuration", "revision"},
		),
		resolveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "freshdeps_resolve_duration_seconds",
				Help:    "Time taken to resolve a configuration.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"revision"},
		),
		dependencies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freshdeps_dependency_status_total",
				Help: "Number of dependency statuses by outcome.",
			},
			[]string{"configuration", "outcome"},
		),
		cacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freshdeps_cache_hits_total",
				Help: "Number of cache hits by namespace.",
			},
			[]string{"namespace"},
		),
		cacheMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freshdeps_cache_misses_total",
				Help: "Number of cache misses by namespace.",
			},
			[]string{"namespace"},
		),
		cacheBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freshdeps_cache_written_bytes_total",
				Help: "Bytes written to the cache by namespace.",
			},
			[]string{"namespace"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freshdeps_http_requests_total",
				Help: "Number of repository HTTP responses by host and status code.",
			},
			[]string{"host", "code"},
		),
		httpErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "freshdeps_http_errors_total",
				Help: "Number of repository HTTP transport errors by host.",
			},
			[]string{"host"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "freshdeps_http_request_duration_seconds",
				Help:    "Repository HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"host"},
		),
	}

	reg.MustRegister(
		h.resolveTotal,
		h.resolveErrors,
		h.resolveDuration,
		h.dependencies,
		h.cacheHits,
		h.cacheMisses,
		h.cacheBytes,
		h.httpRequests,
		h.httpErrors,
		h.httpDuration,
	)
	return h
}

func (h *PrometheusHooks) OnResolveStart(context.Context, string, string) {}

func (h *PrometheusHooks) OnResolveComplete(_ context.Context, configuration, revision string, _ int, duration time.Duration, err error) {
	h.resolveTotal.WithLabelValues(configuration, revision).Inc()
	if err != nil {
		h.resolveErrors.WithLabelValues(configuration, revision).Inc()
	}
	h.resolveDuration.WithLabelValues(revision).Observe(duration.Seconds())
}

func (h *PrometheusHooks) OnDependencyStatus(_ context.Context, configuration, outcome string) {
	h.dependencies.WithLabelValues(configuration, outcome).Inc()
}

func (h *PrometheusHooks) OnCacheHit(_ context.Context, keyType string) {
	h.cacheHits.WithLabelValues(keyType).Inc()
}

func (h *PrometheusHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.cacheMisses.WithLabelValues(keyType).Inc()
}

func (h *PrometheusHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.cacheBytes.WithLabelValues(keyType).Add(float64(size))
}

func (h *PrometheusHooks) OnRequest(context.Context, string, string, string) {}

func (h *PrometheusHooks) OnResponse(_ context.Context, _, host, _ string, statusCode int, duration time.Duration) {
	h.httpRequests.WithLabelValues(host, strconv.Itoa(statusCode)).Inc()
	h.httpDuration.WithLabelValues(host).Observe(duration.Seconds())
}

func (h *PrometheusHooks) OnError(_ context.Context, _, host, _ string, _ error) {
	h.httpErrors.WithLabelValues(host).Inc()
}

var (
	_ ResolveHooks = (*PrometheusHooks)(nil)
	_ CacheHooks   = (*PrometheusHooks)(nil)
	_ HTTPHooks    = (*PrometheusHooks)(nil)
)
