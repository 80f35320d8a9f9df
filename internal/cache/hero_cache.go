package cache

import (
	"context"
	"encoding/json"
	"time"

	"texpress/internal/domain"

	"github.com/go-redis/redis/v8"
)

// Clock is injectable so expiry can be tested without sleeping.
type Clock func() time.Time

// Entry is the typed cache record: the payload plus an explicit expiry,
// instead of a bare JSON blob with a timestamp field.
type Entry struct {
	Value     []domain.HeroSection `json:"value"`
	ExpiresAt time.Time            `json:"expires_at"`
}

func (e Entry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

const heroKey = "hero:sections"

// DefaultHeroTTL matches the storefront's 5-minute banner cache window.
const DefaultHeroTTL = 5 * time.Minute

type HeroCache struct {
	rdb *redis.Client
	ttl time.Duration
	now Clock
}

func NewHeroCache(rdb *redis.Client, ttl time.Duration, now Clock) *HeroCache {
	if now == nil {
		now = time.Now
	}
	if ttl <= 0 {
		ttl = DefaultHeroTTL
	}
	return &HeroCache{rdb: rdb, ttl: ttl, now: now}
}

// Get returns the cached sections and true on a fresh hit. A nil client,
// redis error, decode error or stale entry are all plain misses.
func (c *HeroCache) Get(ctx context.Context) ([]domain.HeroSection, bool) {
	if c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, heroKey).Result()
	if err != nil {
		return nil, false
	}
	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, false
	}
	if entry.Expired(c.now()) {
		return nil, false
	}
	return entry.Value, true
}

func (c *HeroCache) Set(ctx context.Context, sections []domain.HeroSection) {
	if c.rdb == nil {
		return
	}
	entry := Entry{Value: sections, ExpiresAt: c.now().Add(c.ttl)}
	if data, err := json.Marshal(entry); err == nil {
		c.rdb.Set(ctx, heroKey, data, c.ttl)
	}
}

// Invalidate drops the entry; called on every admin mutation so the
// storefront never renders a deleted banner for up to 5 minutes.
func (c *HeroCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, heroKey)
}
