package middleware

import (
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

// fakeClock steps time manually so window boundaries are exact.
type fakeClock struct {
    t time.Time
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestLimiter(limit int) (*RateLimiter, *fakeClock) {
    clock := &fakeClock{t: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
    return NewRateLimiterWith(limit, DefaultWindow, clock.now), clock
}

func TestAllowUpToLimitThenDeny(t *testing.T) {
    rl, _ := newTestLimiter(100)

    for i := 0; i < 100; i++ {
        require.True(t, rl.Allow("1.2.3.4"), "request %d should be allowed", i+1)
    }
    assert.False(t, rl.Allow("1.2.3.4"), "the 101st request in the window is denied")
}

func TestWindowResetStartsFresh(t *testing.T) {
    rl, clock := newTestLimiter(100)

    for i := 0; i < 100; i++ {
        rl.Allow("1.2.3.4")
    }
    require.False(t, rl.Allow("1.2.3.4"))

    clock.advance(61 * time.Second)
    assert.True(t, rl.Allow("1.2.3.4"), "a request after the window elapses resets the count to 1")
    assert.Equal(t, 99, rl.Remaining("1.2.3.4"))
}

func TestClientsAreIndependent(t *testing.T) {
    rl, _ := newTestLimiter(2)

    require.True(t, rl.Allow("a"))
    require.True(t, rl.Allow("a"))
    require.False(t, rl.Allow("a"))

    assert.True(t, rl.Allow("b"), "another client has its own window")
}

func TestSweepDropsExpiredWindows(t *testing.T) {
    rl, clock := newTestLimiter(100)

    rl.Allow("a")
    rl.Allow("b")
    require.Len(t, rl.clients, 2)

    clock.advance(2 * time.Minute)
    rl.Allow("c")
    rl.Sweep()

    assert.Len(t, rl.clients, 1, "only the live window survives the sweep")
    _, ok := rl.clients["c"]
    assert.True(t, ok)
}

func TestMiddlewareReturns429WithHeaders(t *testing.T) {
    rl, _ := newTestLimiter(1)
    denied := 0
    rl.OnDeny = func() { denied++ }

    handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
    }))

    req := httptest.NewRequest("GET", "/api/districts", nil)
    req.RemoteAddr = "9.9.9.9:1234"

    rec := httptest.NewRecorder()
    handler.ServeHTTP(rec, req)
    require.Equal(t, http.StatusOK, rec.Code)

    rec = httptest.NewRecorder()
    handler.ServeHTTP(rec, req)
    assert.Equal(t, http.StatusTooManyRequests, rec.Code)
    assert.NotEmpty(t, rec.Header().Get("Retry-After"))
    assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
    assert.Equal(t, 1, denied)
}

func TestClientAddressPrefersForwardedFor(t *testing.T) {
    req := httptest.NewRequest("GET", "/", nil)
    req.RemoteAddr = "10.0.0.1:5555"
    assert.Equal(t, "10.0.0.1", clientAddress(req))

    req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
    assert.Equal(t, "203.0.113.9", clientAddress(req))
}
