package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/p0rkchop/ward-sub000/internal/domain/schedule"
)

// Availability is a short-TTL cache of computed availability windows.
// Writes bump a version counter instead of scanning for keys, so
// invalidation is a single INCR. A nil *Availability is a no-op cache.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

const versionKey = "availability:version"

func NewAvailability(addr, password string, ttl time.Duration) *Availability {
	if addr == "" {
		return nil
	}
	return &Availability{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: ttl,
	}
}

func (c *Availability) key(ctx context.Context, start, end time.Time) string {
	version, err := c.rdb.Get(ctx, versionKey).Int64()
	if err != nil {
		version = 0
	}
	return fmt.Sprintf("availability:v%d:%d:%d", version, start.UnixMilli(), end.UnixMilli())
}

func (c *Availability) Get(ctx context.Context, start, end time.Time) (*domain.Availability, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, c.key(ctx, start, end)).Bytes()
	if err != nil {
		return nil, false
	}

	var av domain.Availability
	if err := json.Unmarshal(raw, &av); err != nil {
		return nil, false
	}

	return &av, true
}

func (c *Availability) Set(ctx context.Context, start, end time.Time, av *domain.Availability) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(av)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, c.key(ctx, start, end), raw, c.ttl)
}

// Invalidate makes every cached window stale. Called after any shift
// or booking mutation.
func (c *Availability) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.rdb.Incr(ctx, versionKey)
}
