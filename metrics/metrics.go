package metrics

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service. Built once
// in main and passed to whoever records; a nil *Metrics is safe and
// records nothing, which keeps tests quiet.
type Metrics struct {
    RequestsTotal    *prometheus.CounterVec
    CacheHits        prometheus.Counter
    CacheMisses      prometheus.Counter
    RateLimited      prometheus.Counter
    RefreshRuns      prometheus.Counter
    RefreshErrors    prometheus.Counter
    FallbackServed   *prometheus.CounterVec
}

func New() *Metrics {
    return &Metrics{
        RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
            Name: "mgnrega_http_requests_total",
            Help: "HTTP requests served, by route and status code",
        }, []string{"route", "status"}),
        CacheHits: promauto.NewCounter(prometheus.CounterOpts{
            Name: "mgnrega_cache_hits_total",
            Help: "Read-through cache hits",
        }),
        CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
            Name: "mgnrega_cache_misses_total",
            Help: "Read-through cache misses",
        }),
        RateLimited: promauto.NewCounter(prometheus.CounterOpts{
            Name: "mgnrega_rate_limited_total",
            Help: "Requests denied by the fixed-window rate limiter",
        }),
        RefreshRuns: promauto.NewCounter(prometheus.CounterOpts{
            Name: "mgnrega_refresh_runs_total",
            Help: "Refresh job executions",
        }),
        RefreshErrors: promauto.NewCounter(prometheus.CounterOpts{
            Name: "mgnrega_refresh_errors_total",
            Help: "Refresh job executions that logged at least one error",
        }),
        FallbackServed: promauto.NewCounterVec(prometheus.CounterOpts{
            Name: "mgnrega_fallback_served_total",
            Help: "Responses served from static or synthetic fallbacks, by endpoint",
        }, []string{"endpoint"}),
    }
}

func (m *Metrics) IncCacheHit() {
    if m != nil {
        m.CacheHits.Inc()
    }
}

func (m *Metrics) IncCacheMiss() {
    if m != nil {
        m.CacheMisses.Inc()
    }
}

func (m *Metrics) IncRateLimited() {
    if m != nil {
        m.RateLimited.Inc()
    }
}

func (m *Metrics) IncFallback(endpoint string) {
    if m != nil {
        m.FallbackServed.WithLabelValues(endpoint).Inc()
    }
}

func (m *Metrics) IncRefreshRun() {
    if m != nil {
        m.RefreshRuns.Inc()
    }
}

func (m *Metrics) IncRefreshError() {
    if m != nil {
        m.RefreshErrors.Inc()
    }
}

func (m *Metrics) IncRequest(route, status string) {
    if m != nil {
        m.RequestsTotal.WithLabelValues(route, status).Inc()
    }
}
