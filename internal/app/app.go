package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ringside-labs/boxing-platform/internal/auth"
	"github.com/ringside-labs/boxing-platform/internal/boxer"
	"github.com/ringside-labs/boxing-platform/internal/config"
	"github.com/ringside-labs/boxing-platform/internal/db"
	"github.com/ringside-labs/boxing-platform/internal/db/repository"
	"github.com/ringside-labs/boxing-platform/internal/leaderboard"
	"github.com/ringside-labs/boxing-platform/internal/logging"
	"github.com/ringside-labs/boxing-platform/internal/ring"
	"github.com/ringside-labs/boxing-platform/internal/ring/external"
	"github.com/ringside-labs/boxing-platform/internal/server"
	ws "github.com/ringside-labs/boxing-platform/pkg/http/ws"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	db    *sql.DB
	redis *redis.Client
	http  *http.Server

	fightBroadcaster *ring.Broadcaster
	bgCancels        []context.CancelFunc
}

// New bootstraps config, logger, Postgres, Redis and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	conn, err := db.Open(ctx, cfg.Postgres)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	boxerRepo := repository.NewBoxerRepository(conn)

	// Leaderboard with Redis read-through cache
	lbCache := leaderboard.NewCache(redisClient, cfg.Leaderboard.CacheTTL)
	lbSvc := leaderboard.NewService(boxerRepo, lbCache, logger)
	lbHandler := leaderboard.NewHTTPHandler(lbSvc, logger)

	// Ring state and fight simulation
	ringMgr := ring.NewManager(redisClient, cfg.Ring.StateKey, cfg.Ring.Capacity, cfg.Ring.StateTTL, logger)
	randomClient := external.NewRandomOrgClient(cfg.Random.BaseURL, &http.Client{Timeout: cfg.Random.HTTPTimeout})
	fightFeed := ring.NewFeed(redisClient, "")
	fightSvc := ring.NewService(ringMgr, boxerRepo, randomClient, fightFeed, lbSvc, logger)

	boxerSvc := boxer.NewService(boxerRepo, ringMgr, lbSvc, logger)

	// Optional admin guard
	var adminMgr *auth.Manager
	if cfg.Security.AdminJWTSecret != "" {
		adminMgr = auth.NewManager(auth.TokenConfig{
			Secret: []byte(cfg.Security.AdminJWTSecret),
			Issuer: cfg.Name,
		})
		logger.Info().Msg("admin guard initialized")
	} else {
		logger.Warn().Msg("ADMIN_JWT_SECRET not configured; destructive endpoints are open")
	}

	wsHub := ws.NewHub(logger)
	broadcaster := ring.NewBroadcaster(redisClient, wsHub, "", logger)

	apiServer := server.NewHTTPServer(cfg, logger, conn, redisClient, boxerRepo, adminMgr, server.Handlers{
		Boxers:      boxer.NewHTTPHandlers(boxerSvc, logger),
		Ring:        ring.NewHTTPHandlers(fightSvc, boxerSvc, logger),
		Leaderboard: lbHandler.HandleGet,
		FightFeed:   server.NewFightFeedHandler(wsHub, logger),
	})

	return &Application{
		cfg:              cfg,
		logger:           logger,
		db:               conn,
		redis:            redisClient,
		http:             apiServer,
		fightBroadcaster: broadcaster,
		bgCancels:        make([]context.CancelFunc, 0, 1),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	for _, cancel := range a.bgCancels {
		cancel()
	}

	if err := a.db.Close(); err != nil {
		a.logger.Error().Err(err).Msg("db shutdown error")
	}
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) startBackgroundWorkers(ctx context.Context) {
	if a.fightBroadcaster != nil {
		bgCtx, cancel := context.WithCancel(ctx)
		a.bgCancels = append(a.bgCancels, cancel)
		go func() {
			if err := a.fightBroadcaster.Run(bgCtx); err != nil && err != context.Canceled {
				a.logger.Warn().Err(err).Msg("fight broadcaster stopped")
			}
		}()
	}
}
