package boxer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ringside-labs/boxing-platform/internal/metrics"
)

// Store is the persistence surface the boxer service needs.
type Store interface {
	Create(ctx context.Context, n NewBoxer) (Boxer, error)
	GetByID(ctx context.Context, id int64) (Boxer, error)
	GetByName(ctx context.Context, name string) (Boxer, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

// RingClearer empties the fight-eligible set; deleting boxers must not leave
// stale entrants behind.
type RingClearer interface {
	Clear(ctx context.Context) error
}

// RankingInvalidator drops cached leaderboard results after stats-affecting writes.
type RankingInvalidator interface {
	Invalidate(ctx context.Context)
}

// Service carries boxer catalog operations and their side effects.
type Service struct {
	store   Store
	ring    RingClearer
	ranking RankingInvalidator
	logger  zerolog.Logger
}

// NewService constructs the boxer catalog service.
func NewService(store Store, ring RingClearer, ranking RankingInvalidator, logger zerolog.Logger) *Service {
	return &Service{
		store:   store,
		ring:    ring,
		ranking: ranking,
		logger:  logger.With().Str("component", "boxer").Logger(),
	}
}

// Create validates and registers a new boxer.
func (s *Service) Create(ctx context.Context, n NewBoxer) (Boxer, error) {
	if err := n.Validate(); err != nil {
		s.logger.Warn().Err(err).Str("name", n.Name).Msg("boxer validation failed")
		return Boxer{}, err
	}

	b, err := s.store.Create(ctx, n)
	if err != nil {
		return Boxer{}, err
	}

	metrics.BoxersCreated.Inc()
	s.logger.Info().Int64("boxer_id", b.ID).Str("name", b.Name).Msg("boxer added")
	return b, nil
}

// GetByID fetches a boxer by id.
func (s *Service) GetByID(ctx context.Context, id int64) (Boxer, error) {
	return s.store.GetByID(ctx, id)
}

// GetByName fetches a boxer by name.
func (s *Service) GetByName(ctx context.Context, name string) (Boxer, error) {
	return s.store.GetByName(ctx, name)
}

// Delete removes a boxer and invalidates the cached ranking, which may have
// included the deleted record.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	if s.ranking != nil {
		s.ranking.Invalidate(ctx)
	}
	s.logger.Info().Int64("boxer_id", id).Msg("boxer deleted")
	return nil
}

// ClearAll wipes the catalog and, because deleted boxers cannot stay
// fight-eligible, the ring with it.
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.store.DeleteAll(ctx); err != nil {
		return err
	}
	if s.ring != nil {
		if err := s.ring.Clear(ctx); err != nil {
			return fmt.Errorf("clear ring after wipe: %w", err)
		}
	}
	if s.ranking != nil {
		s.ranking.Invalidate(ctx)
	}
	s.logger.Info().Msg("boxer catalog cleared")
	return nil
}
