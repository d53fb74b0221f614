package middleware

import (
    "encoding/json"
    "log"
    "net"
    "net/http"
    "strconv"
    "strings"
    "sync"
    "time"
)

const (
    // DefaultLimit allows this many requests per client per window.
    DefaultLimit = 100
    // DefaultWindow is the fixed, non-sliding window length.
    DefaultWindow = 60 * time.Second

    sweepInterval = 5 * time.Minute
)

// window is one client's fixed-window state: requests seen so far and
// the instant the window resets.
type window struct {
    count   int
    resetAt time.Time
}

// RateLimiter is a per-client fixed-window request counter. It never
// errors; it only allows or denies. The clock is injectable so tests
// can step through a window without sleeping.
type RateLimiter struct {
    mu      sync.Mutex
    clients map[string]*window
    limit   int
    window  time.Duration
    now     func() time.Time
    stop    chan struct{}

    // OnDeny, when set, is invoked once per denied request. Used to
    // feed the rate-limited counter without coupling this package to
    // the metrics registry.
    OnDeny func()
}

func NewRateLimiter() *RateLimiter {
    return NewRateLimiterWith(DefaultLimit, DefaultWindow, time.Now)
}

func NewRateLimiterWith(limit int, windowLen time.Duration, now func() time.Time) *RateLimiter {
    return &RateLimiter{
        clients: make(map[string]*window),
        limit:   limit,
        window:  windowLen,
        now:     now,
        stop:    make(chan struct{}),
    }
}

// Allow decides the current request for client and advances the window
// state. A request in a fresh (or expired) window starts a new window
// with count 1.
func (rl *RateLimiter) Allow(client string) bool {
    rl.mu.Lock()
    defer rl.mu.Unlock()

    now := rl.now()
    w, ok := rl.clients[client]
    if !ok || now.After(w.resetAt) || now.Equal(w.resetAt) {
        rl.clients[client] = &window{count: 1, resetAt: now.Add(rl.window)}
        return true
    }
    if w.count >= rl.limit {
        return false
    }
    w.count++
    return true
}

// RetryAfter reports seconds until the client's window resets.
func (rl *RateLimiter) RetryAfter(client string) int {
    rl.mu.Lock()
    defer rl.mu.Unlock()
    w, ok := rl.clients[client]
    if !ok {
        return 0
    }
    secs := int(w.resetAt.Sub(rl.now()).Seconds())
    if secs < 0 {
        secs = 0
    }
    return secs
}

// Remaining reports how many requests the client has left this window.
func (rl *RateLimiter) Remaining(client string) int {
    rl.mu.Lock()
    defer rl.mu.Unlock()
    w, ok := rl.clients[client]
    if !ok || rl.now().After(w.resetAt) {
        return rl.limit
    }
    left := rl.limit - w.count
    if left < 0 {
        left = 0
    }
    return left
}

// StartSweeper drops expired windows on an interval so the client map
// does not grow with every address ever seen. Call Stop to end it.
func (rl *RateLimiter) StartSweeper() {
    go func() {
        ticker := time.NewTicker(sweepInterval)
        defer ticker.Stop()
        for {
            select {
            case <-ticker.C:
                rl.Sweep()
            case <-rl.stop:
                return
            }
        }
    }()
}

// Sweep removes every window whose reset time has passed.
func (rl *RateLimiter) Sweep() {
    rl.mu.Lock()
    defer rl.mu.Unlock()
    now := rl.now()
    for client, w := range rl.clients {
        if now.After(w.resetAt) {
            delete(rl.clients, client)
        }
    }
}

func (rl *RateLimiter) Stop() {
    close(rl.stop)
}

// Middleware applies the limiter to every request that passes through
// it, keyed by client address. Mount it on the API subrouter only;
// static assets stay unthrottled.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        client := clientAddress(r)

        if !rl.Allow(client) {
            if rl.OnDeny != nil {
                rl.OnDeny()
            }
            retryAfter := rl.RetryAfter(client)
            log.Printf("RateLimiter: denied %s %s for %s", r.Method, r.URL.Path, client)
            w.Header().Set("Content-Type", "application/json")
            w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
            w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
            w.Header().Set("X-RateLimit-Remaining", "0")
            w.WriteHeader(http.StatusTooManyRequests)
            json.NewEncoder(w).Encode(map[string]interface{}{
                "error":       "Too many requests. Please try again later.",
                "retry_after": retryAfter,
            })
            return
        }

        next.ServeHTTP(w, r)
    })
}

// clientAddress extracts the client IP, preferring X-Forwarded-For set
// by the reverse proxy in front of the service.
func clientAddress(r *http.Request) string {
    if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
        if i := strings.Index(fwd, ","); i >= 0 {
            fwd = fwd[:i]
        }
        return strings.TrimSpace(fwd)
    }
    host, _, err := net.SplitHostPort(r.RemoteAddr)
    if err != nil {
        return r.RemoteAddr
    }
    return host
}
