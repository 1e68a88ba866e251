package climate

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// queryCacheTTL bounds how long aggregate query results are served
// without touching the database.
const queryCacheTTL = time.Hour

// queryCacheSize caps the number of cached aggregates. The working set
// is tiny: one stats entry plus one trend per data type.
const queryCacheSize = 64

// queryCache is a small TTL cache for query results that are expensive
// to recompute and tolerant of hour-old data.
type queryCache struct {
	lru *expirable.LRU[string, any]
	ttl time.Duration
}

func newQueryCache(ttl time.Duration) *queryCache {
	return &queryCache{
		lru: expirable.NewLRU[string, any](queryCacheSize, nil, ttl),
		ttl: ttl,
	}
}

func (c *queryCache) get(key string) (any, bool) {
	return c.lru.Get(key)
}

func (c *queryCache) set(key string, value any) {
	c.lru.Add(key, value)
}

// purge drops every entry. Called after a feed refresh so stale
// aggregates are not served alongside fresh observations.
func (c *queryCache) purge() {
	c.lru.Purge()
}
