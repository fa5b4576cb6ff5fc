package ring

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/ringside-labs/boxing-platform/internal/boxer"
	"github.com/ringside-labs/boxing-platform/internal/metrics"
)

// Store is the ring membership surface used by the fight service.
type Store interface {
	Enter(ctx context.Context, b boxer.Boxer) error
	Boxers(ctx context.Context) ([]boxer.Boxer, error)
	Clear(ctx context.Context) error
}

// StatsRecorder persists win/loss outcomes.
type StatsRecorder interface {
	RecordResult(ctx context.Context, id int64, result boxer.FightResult) error
}

// RandomSource yields a uniform number in [0, 1).
type RandomSource interface {
	Float64(ctx context.Context) (float64, error)
}

// Publisher emits fight results for downstream consumers (websocket feed).
type Publisher interface {
	PublishFightResult(ctx context.Context, result FightOutcome) error
}

// RankingInvalidator drops cached leaderboard results after a recorded fight.
type RankingInvalidator interface {
	Invalidate(ctx context.Context)
}

// FightOutcome is the decided result of one simulated fight.
type FightOutcome struct {
	Winner     boxer.Boxer `json:"winner"`
	Loser      boxer.Boxer `json:"loser"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// Service orchestrates ring membership and fight simulation.
type Service struct {
	store     Store
	stats     StatsRecorder
	random    RandomSource
	publisher Publisher
	ranking   RankingInvalidator
	logger    zerolog.Logger
}

// NewService creates the fight service. random, publisher and ranking may be
// nil; the service degrades to local randomness and skips the optional hooks.
func NewService(store Store, stats StatsRecorder, random RandomSource, publisher Publisher, ranking RankingInvalidator, logger zerolog.Logger) *Service {
	return &Service{
		store:     store,
		stats:     stats,
		random:    random,
		publisher: publisher,
		ranking:   ranking,
		logger:    logger.With().Str("component", "fight").Logger(),
	}
}

// Enter adds a boxer to the ring.
func (s *Service) Enter(ctx context.Context, b boxer.Boxer) error {
	if err := s.store.Enter(ctx, b); err != nil {
		return err
	}
	metrics.RingEntries.Inc()
	return nil
}

// Boxers lists the current entrants.
func (s *Service) Boxers(ctx context.Context) ([]boxer.Boxer, error) {
	return s.store.Boxers(ctx)
}

// Clear empties the ring.
func (s *Service) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// Fight simulates a bout between the two entrants, records the outcome, and
// clears the ring.
//
// The winner is drawn against a logistic curve over the skill gap: a larger
// gap pushes the odds toward the first entrant when their skill is higher.
func (s *Service) Fight(ctx context.Context) (FightOutcome, error) {
	entrants, err := s.store.Boxers(ctx)
	if err != nil {
		return FightOutcome{}, err
	}
	if len(entrants) < 2 {
		return FightOutcome{}, ErrNotEnoughBoxers
	}

	first, second := entrants[0], entrants[1]

	skillFirst := FightingSkill(first)
	skillSecond := FightingSkill(second)

	delta := math.Abs(skillFirst - skillSecond)
	normalized := 1 / (1 + math.Exp(-delta))

	draw := s.draw(ctx)

	winner, loser := second, first
	if draw < normalized {
		winner, loser = first, second
	}

	if err := s.stats.RecordResult(ctx, winner.ID, boxer.ResultWin); err != nil {
		return FightOutcome{}, fmt.Errorf("record win for %q: %w", winner.Name, err)
	}
	if err := s.stats.RecordResult(ctx, loser.ID, boxer.ResultLoss); err != nil {
		return FightOutcome{}, fmt.Errorf("record loss for %q: %w", loser.Name, err)
	}

	if err := s.store.Clear(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to clear ring after fight")
	}
	if s.ranking != nil {
		s.ranking.Invalidate(ctx)
	}

	outcome := FightOutcome{
		Winner:     winner,
		Loser:      loser,
		OccurredAt: time.Now().UTC(),
	}

	if s.publisher != nil {
		if err := s.publisher.PublishFightResult(ctx, outcome); err != nil {
			s.logger.Warn().Err(err).Msg("failed to publish fight result")
		}
	}

	metrics.FightsTotal.Inc()
	s.logger.Info().
		Str("winner", winner.Name).
		Str("loser", loser.Name).
		Float64("odds", normalized).
		Msg("fight decided")

	return outcome, nil
}

// draw consults the external random source and falls back to local randomness
// when it is unavailable.
func (s *Service) draw(ctx context.Context) float64 {
	if s.random != nil {
		value, err := s.random.Float64(ctx)
		if err == nil {
			return value
		}
		s.logger.Warn().Err(err).Msg("external random source unavailable, using local fallback")
	}
	return rand.Float64()
}

// FightingSkill scores a boxer for simulation purposes. Younger and older
// fighters carry a small penalty.
func FightingSkill(b boxer.Boxer) float64 {
	ageModifier := 0.0
	switch {
	case b.Age < 25:
		ageModifier = -1
	case b.Age > 35:
		ageModifier = -2
	}
	return float64(b.Weight*len(b.Name)) + b.Reach/10 + ageModifier
}
