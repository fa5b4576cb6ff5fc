package ring

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DefaultFightChannel is the Pub/Sub channel carrying fight results.
const DefaultFightChannel = "fights:events"

// Feed publishes fight outcomes over Redis Pub/Sub so every API instance can
// forward them to its own websocket clients.
type Feed struct {
	redis   *redis.Client
	channel string
}

var _ Publisher = (*Feed)(nil)

// NewFeed creates a Pub/Sub fight feed publisher.
func NewFeed(redisClient *redis.Client, channel string) *Feed {
	if channel == "" {
		channel = DefaultFightChannel
	}
	return &Feed{redis: redisClient, channel: channel}
}

// PublishFightResult emits one decided fight.
func (f *Feed) PublishFightResult(ctx context.Context, outcome FightOutcome) error {
	data, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("marshal fight outcome: %w", err)
	}
	if err := f.redis.Publish(ctx, f.channel, data).Err(); err != nil {
		return fmt.Errorf("publish fight outcome: %w", err)
	}
	return nil
}
