package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coachdesk/coachdesk/internal/training"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	planCacheKeyPrefix = "coachdesk::plan::"
	planCacheTTL       = 5 * time.Minute
)

type planSource interface {
	Get(ctx context.Context, id string) (*training.Plan, error)
}

// CachedRepo is a read-through cache in front of the plans repo. Cache
// failures are logged and fall back to the source; a stale snapshot for at
// most the TTL is acceptable for reporting, and writes go straight to the
// repo anyway.
type CachedRepo struct {
	source planSource
	rdb    *redis.Client
}

func NewCachedRepo(source planSource, rdb *redis.Client) *CachedRepo {
	return &CachedRepo{
		source: source,
		rdb:    rdb,
	}
}

func (c *CachedRepo) Get(ctx context.Context, id string) (*training.Plan, error) {
	key := planCacheKeyPrefix + id

	cached, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		var plan training.Plan
		if err := json.Unmarshal([]byte(cached), &plan); err == nil {
			return &plan, nil
		}
		log.Warnf("plan cache: corrupt entry for %s, refetching", id)
	case !errors.Is(err, redis.Nil):
		log.Warnf("plan cache: get %s: %s", id, err)
	}

	plan, err := c.source.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("marshal plan: %w", err)
	}
	if err := c.rdb.Set(ctx, key, planJson, planCacheTTL).Err(); err != nil {
		log.Warnf("plan cache: set %s: %s", id, err)
	}

	return plan, nil
}

// Invalidate drops a cached plan snapshot, used after plan updates so reports
// do not keep serving the previous revision for a full TTL.
func (c *CachedRepo) Invalidate(ctx context.Context, id string) {
	if err := c.rdb.Del(ctx, planCacheKeyPrefix+id).Err(); err != nil {
		log.Warnf("plan cache: invalidate %s: %s", id, err)
	}
}
