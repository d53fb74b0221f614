package handlers

import (
    "encoding/json"
    "log"
    "net/http"
    "time"

    "github.com/Aayush-pixel29/mgnrega-dashboard/cache"
    "github.com/Aayush-pixel29/mgnrega-dashboard/metrics"
    "github.com/Aayush-pixel29/mgnrega-dashboard/store"
)

// Handler owns the request-path dependencies. Store may be nil when
// the database never came up; every read path degrades to the static
// directory or synthetic data in that case.
type Handler struct {
    Store   store.Store
    Cache   cache.Store
    Metrics *metrics.Metrics

    // Now is the clock for period computation; tests pin it.
    Now func() time.Time
}

func New(st store.Store, c cache.Store, m *metrics.Metrics) *Handler {
    return &Handler{
        Store:   st,
        Cache:   c,
        Metrics: m,
        Now:     time.Now,
    }
}

func (h *Handler) cacheGet(key string) (interface{}, bool) {
    if h.Cache == nil {
        return nil, false
    }
    v, found := h.Cache.Get(key)
    if found {
        h.Metrics.IncCacheHit()
    } else {
        h.Metrics.IncCacheMiss()
    }
    return v, found
}

func (h *Handler) cacheSet(key string, value interface{}) {
    if h.Cache != nil {
        h.Cache.Set(key, value)
    }
}

func sendJSONResponse(w http.ResponseWriter, code int, payload interface{}) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(code)
    json.NewEncoder(w).Encode(payload)
}

func sendErrorResponse(w http.ResponseWriter, message string, code int) {
    log.Printf("Error: %s (Code: %d)", message, code)

    response := map[string]interface{}{
        "error":     message,
        "code":      code,
        "status":    http.StatusText(code),
        "timestamp": time.Now().Format(time.RFC3339),
    }

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(code)
    json.NewEncoder(w).Encode(response)
}
