package leaderboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ringside-labs/boxing-platform/internal/db/repository"
)

const defaultCacheTTL = 30 * time.Second

// Cache provides Redis-backed ranking caching to offload the leaderboard query.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ RankingCache = (*Cache)(nil)

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) key(sortBy string) string {
	return "leaderboard:" + sortBy
}

func (c *Cache) Get(ctx context.Context, sortBy string) ([]repository.LeaderboardRow, error) {
	data, err := c.client.Get(ctx, c.key(sortBy)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var ranking []repository.LeaderboardRow
	if err := json.Unmarshal(data, &ranking); err != nil {
		return nil, err
	}
	return ranking, nil
}

func (c *Cache) Set(ctx context.Context, sortBy string, ranking []repository.LeaderboardRow) error {
	data, err := json.Marshal(ranking)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(sortBy), data, c.ttl).Err()
}

// Invalidate drops every cached sort order. Best effort; a stale entry only
// survives until its TTL anyway.
func (c *Cache) Invalidate(ctx context.Context) {
	c.client.Del(ctx, c.key(repository.SortByWins), c.key(repository.SortByWinPct))
}
