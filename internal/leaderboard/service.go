package leaderboard

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ringside-labs/boxing-platform/internal/db/repository"
)

// RankingStore runs the leaderboard query against the database.
type RankingStore interface {
	Leaderboard(ctx context.Context, sortBy string) ([]repository.LeaderboardRow, error)
}

// RankingCache is the optional read-through cache in front of the store.
type RankingCache interface {
	Get(ctx context.Context, sortBy string) ([]repository.LeaderboardRow, error)
	Set(ctx context.Context, sortBy string, ranking []repository.LeaderboardRow) error
	Invalidate(ctx context.Context)
}

// Service serves ranked boxers, caching results between stat changes.
type Service struct {
	store  RankingStore
	cache  RankingCache
	logger zerolog.Logger
}

// NewService constructs a leaderboard service instance.
func NewService(store RankingStore, cache RankingCache, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger.With().Str("component", "leaderboard").Logger(),
	}
}

// Top returns boxers with at least one fight, ranked by the requested sort.
// Cache failures fall through to the database.
func (s *Service) Top(ctx context.Context, sortBy string) ([]repository.LeaderboardRow, error) {
	if s.cache != nil {
		ranking, err := s.cache.Get(ctx, sortBy)
		if err != nil {
			s.logger.Warn().Err(err).Str("sort", sortBy).Msg("leaderboard cache read failed")
		} else if ranking != nil {
			return ranking, nil
		}
	}

	ranking, err := s.store.Leaderboard(ctx, sortBy)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, sortBy, ranking); err != nil {
			s.logger.Warn().Err(err).Str("sort", sortBy).Msg("leaderboard cache write failed")
		}
	}
	return ranking, nil
}

// Invalidate drops cached rankings; called whenever fight stats change.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
