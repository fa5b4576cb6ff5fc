package ring

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	ws "github.com/ringside-labs/boxing-platform/pkg/http/ws"
)

// Broadcaster listens for Redis Pub/Sub fight results and forwards them to all
// connected websocket clients.
type Broadcaster struct {
	redis   *redis.Client
	hub     *ws.Hub
	channel string
	logger  zerolog.Logger
}

// NewBroadcaster creates a Pub/Sub powered fight-feed broadcaster.
func NewBroadcaster(redisClient *redis.Client, hub *ws.Hub, channel string, logger zerolog.Logger) *Broadcaster {
	if channel == "" {
		channel = DefaultFightChannel
	}
	return &Broadcaster{
		redis:   redisClient,
		hub:     hub,
		channel: channel,
		logger:  logger.With().Str("component", "fight_broadcaster").Logger(),
	}
}

// Run subscribes to the fight channel and blocks until the context is cancelled.
func (b *Broadcaster) Run(ctx context.Context) error {
	if b.redis == nil || b.hub == nil {
		return nil
	}

	sub := b.redis.Subscribe(ctx, b.channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.forward(msg.Payload)
		}
	}
}

func (b *Broadcaster) forward(payload string) {
	var outcome FightOutcome
	if err := json.Unmarshal([]byte(payload), &outcome); err != nil {
		b.logger.Warn().Err(err).Msg("failed to decode fight outcome payload")
		return
	}

	raw, err := json.Marshal(ws.FightResultPayload{
		Winner:     outcome.Winner.Name,
		Loser:      outcome.Loser.Name,
		WinnerID:   outcome.Winner.ID,
		LoserID:    outcome.Loser.ID,
		OccurredAt: outcome.OccurredAt,
	})
	if err != nil {
		b.logger.Warn().Err(err).Msg("failed to marshal fight WS payload")
		return
	}

	msg := ws.Message{
		Type:    ws.TypeFightResult,
		Payload: raw,
	}
	if err := b.hub.BroadcastAll(msg); err != nil {
		b.logger.Warn().Err(err).Msg("failed to broadcast fight result")
	}
}
