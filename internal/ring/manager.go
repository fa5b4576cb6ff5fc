package ring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ringside-labs/boxing-platform/internal/boxer"
)

const (
	defaultCapacity = 2
	defaultStateKey = "ring:members"
)

var (
	// ErrRingFull signals an entry attempt with the ring at capacity.
	ErrRingFull = errors.New("ring is full, cannot add more boxers")
	// ErrAlreadyInRing signals a boxer entering the ring twice.
	ErrAlreadyInRing = errors.New("boxer is already in the ring")
	// ErrNotEnoughBoxers signals a fight with fewer than two entrants.
	ErrNotEnoughBoxers = errors.New("there must be two boxers to start a fight")
)

// Manager handles the ephemeral ring membership in Redis. Members are stored
// as a single JSON blob so insertion order (first entrant first) survives
// restarts.
type Manager struct {
	redis    *redis.Client
	key      string
	capacity int
	ttl      time.Duration
	logger   zerolog.Logger
}

// NewManager creates a ring manager backed by Redis.
func NewManager(redisClient *redis.Client, key string, capacity int, ttl time.Duration, logger zerolog.Logger) *Manager {
	if key == "" {
		key = defaultStateKey
	}
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Manager{
		redis:    redisClient,
		key:      key,
		capacity: capacity,
		ttl:      ttl,
		logger:   logger.With().Str("component", "ring").Logger(),
	}
}

// Enter appends a boxer to the ring.
func (m *Manager) Enter(ctx context.Context, b boxer.Boxer) error {
	members, err := m.Boxers(ctx)
	if err != nil {
		return err
	}

	if len(members) >= m.capacity {
		return ErrRingFull
	}
	for _, existing := range members {
		if existing.ID == b.ID {
			return fmt.Errorf("boxer %q: %w", b.Name, ErrAlreadyInRing)
		}
	}

	members = append(members, b)
	if err := m.store(ctx, members); err != nil {
		return err
	}

	m.logger.Info().Str("name", b.Name).Int("ring_size", len(members)).Msg("boxer entered the ring")
	return nil
}

// Boxers returns the current ring membership in entry order.
func (m *Manager) Boxers(ctx context.Context) ([]boxer.Boxer, error) {
	data, err := m.redis.Get(ctx, m.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get ring state: %w", err)
	}

	var members []boxer.Boxer
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("unmarshal ring state: %w", err)
	}
	return members, nil
}

// Clear empties the ring.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.redis.Del(ctx, m.key).Err(); err != nil {
		return fmt.Errorf("clear ring: %w", err)
	}
	m.logger.Info().Msg("ring cleared")
	return nil
}

func (m *Manager) store(ctx context.Context, members []boxer.Boxer) error {
	data, err := json.Marshal(members)
	if err != nil {
		return fmt.Errorf("marshal ring state: %w", err)
	}
	if err := m.redis.Set(ctx, m.key, data, m.ttl).Err(); err != nil {
		return fmt.Errorf("set ring state: %w", err)
	}
	return nil
}
