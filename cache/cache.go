package cache

import (
    "fmt"
    "time"

    gocache "github.com/patrickmn/go-cache"
)

const (
    // DefaultTTL is applied uniformly to every entry, measured from write.
    DefaultTTL = 1 * time.Hour

    defaultCleanupInterval = 2 * time.Hour
)

// Store is the read-through cache contract: a Get after the TTL has
// elapsed behaves as a miss. Handlers own an instance instead of
// reaching for a package-level singleton so tests can build isolated
// caches with short TTLs.
type Store interface {
    Get(key string) (interface{}, bool)
    Set(key string, value interface{})
}

type memoryStore struct {
    c *gocache.Cache
}

// New returns a Store with the default 1 hour TTL.
func New() Store {
    return NewWithTTL(DefaultTTL, defaultCleanupInterval)
}

// NewWithTTL builds a Store with explicit TTL and cleanup interval,
// mainly for tests.
func NewWithTTL(ttl, cleanup time.Duration) Store {
    return &memoryStore{c: gocache.New(ttl, cleanup)}
}

func (m *memoryStore) Get(key string) (interface{}, bool) {
    return m.c.Get(key)
}

func (m *memoryStore) Set(key string, value interface{}) {
    m.c.SetDefault(key, value)
}

// Key builds a cache key from a prefix and parameters.
func Key(prefix string, params ...interface{}) string {
    key := prefix
    for _, param := range params {
        key += ":" + fmt.Sprintf("%v", param)
    }
    return key
}
