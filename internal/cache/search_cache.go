package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"learn-with-jiji/internal/app"
)

// SearchCache keeps recent search results in redis, keyed by the normalized
// query text. Entries expire on their own; nothing invalidates them, the
// resource catalog only changes through seed tooling.
type SearchCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewSearchCache(client *redisv9.Client, ttl time.Duration) *SearchCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &SearchCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *SearchCache) Get(ctx context.Context, query string) ([]app.ResourceSummary, bool, error) {
	raw, err := c.client.Get(ctx, c.key(query)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get search results failed: %w", err)
	}

	var results []app.ResourceSummary
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached search results failed: %w", err)
	}
	return results, true, nil
}

func (c *SearchCache) Set(ctx context.Context, query string, results []app.ResourceSummary) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshal search results failed: %w", err)
	}
	if err := c.client.Set(ctx, c.key(query), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set search results failed: %w", err)
	}
	return nil
}

func (c *SearchCache) key(query string) string {
	sum := sha256.Sum256([]byte(query))
	return "jiji:search:" + hex.EncodeToString(sum[:16])
}
