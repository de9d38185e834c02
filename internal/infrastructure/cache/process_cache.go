package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"studentloan-backend/internal/domain/period"
	"studentloan-backend/internal/domain/process"
	"studentloan-backend/internal/logging"

	"github.com/redis/go-redis/v9"
)

const processKeyPrefix = "loanproc:"

// ProcessCache is a Redis-backed read-after-write view of process records.
// Misses and Redis errors both fall through to the store.
type ProcessCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProcessCache(rdb *redis.Client, ttl time.Duration) *ProcessCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ProcessCache{rdb: rdb, ttl: ttl}
}

// ProcessKey length-prefixes each part so ids containing the separator
// can't collide.
func ProcessKey(k period.StudentKey) string {
	return fmt.Sprintf("%s%d:%s|%d:%s|%d:%s", processKeyPrefix,
		len(k.UserID), k.UserID, len(k.AcademicYear), k.AcademicYear, len(k.Term), k.Term)
}

func (c *ProcessCache) Get(ctx context.Context, key period.StudentKey) (*process.Status, bool) {
	raw, err := c.rdb.Get(ctx, ProcessKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logging.Warn(ctx, "process cache read failed", "key", key.String(), "err", err)
		}
		return nil, false
	}
	var s process.Status
	if err := json.Unmarshal(raw, &s); err != nil {
		logging.Warn(ctx, "process cache entry corrupt", "key", key.String(), "err", err)
		return nil, false
	}
	return &s, true
}

func (c *ProcessCache) Put(ctx context.Context, s *process.Status) {
	if s == nil {
		return
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, ProcessKey(s.Key()), raw, c.ttl).Err(); err != nil {
		logging.Warn(ctx, "process cache write failed", "key", s.Key().String(), "err", err)
	}
}
