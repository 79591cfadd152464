// Package cache keeps a short-lived Redis copy of the upstream campaign list.
//
// The list page is the hot path and the upstream recomputes totals on every
// read. The cache is deleted on every mutation (create, edit, delete, donate)
// so refetch-after-mutation semantics hold: progress figures always come from
// the server, never from a stale or locally adjusted copy.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/FundSpring/FS-Web/internal/upstream"
	"github.com/redis/go-redis/v9"
)

const campaignsKey = "campaigns:all"

// Campaigns is a Redis-backed cache for the public campaign list.
type Campaigns struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCampaigns(client *redis.Client, ttl time.Duration) *Campaigns {
	return &Campaigns{client: client, ttl: ttl}
}

// OpenRedis initializes a Redis connection pool from a URL.
func OpenRedis(dsn string) *redis.Client {
	opt, err := redis.ParseURL(dsn)
	if err != nil {
		log.Fatalf("Failed to parse Redis DSN: %v", err)
	}

	opt.PoolSize = 100
	opt.MinIdleConns = 2
	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err = client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to ping redis: %v", err)
	}

	return client
}

// Get returns the cached list, or ok=false on a miss or any Redis error.
// Cache failures must never break the page; callers fall through to the
// upstream fetch.
func (c *Campaigns) Get(ctx context.Context) ([]upstream.Campaign, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	raw, err := c.client.Get(ctx, campaignsKey).Bytes()
	if err != nil {
		return nil, false
	}

	var campaigns []upstream.Campaign
	if err := json.Unmarshal(raw, &campaigns); err != nil {
		return nil, false
	}
	return campaigns, true
}

// Set stores the list with the configured TTL. Errors are logged and dropped.
func (c *Campaigns) Set(ctx context.Context, campaigns []upstream.Campaign) {
	if c == nil || c.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	raw, err := json.Marshal(campaigns)
	if err != nil {
		log.Println("[cache] encode campaigns: ", err)
		return
	}
	if err := c.client.Set(ctx, campaignsKey, raw, c.ttl).Err(); err != nil {
		log.Println("[cache] set campaigns: ", err)
	}
}

// Invalidate drops the cached list. Called after every mutation so the next
// page load refetches the authoritative state.
func (c *Campaigns) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.client.Del(ctx, campaignsKey).Err(); err != nil {
		log.Println("[cache] invalidate campaigns: ", err)
	}
}
