package process

import (
	"context"
	"sync"
	"time"

	"studentloan-backend/internal/domain/period"
	domain "studentloan-backend/internal/domain/process"
)

// DefaultMemoryTTL bounds how long another writer's change can stay hidden
// behind a local entry.
const DefaultMemoryTTL = 30 * time.Second

var _ Cache = (*MemoryCache)(nil)

type memEntry struct {
	s       *domain.Status
	expires time.Time
}

// MemoryCache keeps copies so callers can't mutate cached records. Entries
// expire after ttl like the Redis cache.
type MemoryCache struct {
	mu  sync.RWMutex
	m   map[period.StudentKey]memEntry
	ttl time.Duration
	now func() time.Time
}

// NewMemoryCache: ttl <= 0 uses DefaultMemoryTTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultMemoryTTL
	}
	return &MemoryCache{m: make(map[period.StudentKey]memEntry), ttl: ttl, now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context, key period.StudentKey) (*domain.Status, bool) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expires) {
		c.mu.Lock()
		if cur, ok := c.m[key]; ok && cur.expires.Equal(e.expires) {
			delete(c.m, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.s.Clone(), true
}

func (c *MemoryCache) Put(_ context.Context, s *domain.Status) {
	if s == nil {
		return
	}
	c.mu.Lock()
	c.m[s.Key()] = memEntry{s: s.Clone(), expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
}
