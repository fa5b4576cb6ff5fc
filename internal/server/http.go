package server

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ringside-labs/boxing-platform/internal/auth"
	"github.com/ringside-labs/boxing-platform/internal/boxer"
	"github.com/ringside-labs/boxing-platform/internal/config"
	"github.com/ringside-labs/boxing-platform/internal/metrics"
	"github.com/ringside-labs/boxing-platform/internal/ring"
	httperrors "github.com/ringside-labs/boxing-platform/pkg/http/errors"
	ws "github.com/ringside-labs/boxing-platform/pkg/http/ws"
)

// TableChecker verifies the schema is in place for /db-check.
type TableChecker interface {
	CheckTable(ctx context.Context) error
}

// Handlers groups the endpoint handlers wired into the server.
type Handlers struct {
	Boxers      *boxer.HTTPHandlers
	Ring        *ring.HTTPHandlers
	Leaderboard http.HandlerFunc
	FightFeed   http.HandlerFunc
}

// NewHTTPServer wires all routes for the API service. adminMgr may be nil, in
// which case the destructive endpoints are unguarded.
func NewHTTPServer(
	cfg *config.App,
	logger zerolog.Logger,
	db *sql.DB,
	redisClient *redis.Client,
	checker TableChecker,
	adminMgr *auth.Manager,
	h Handlers,
) *http.Server {
	mux := http.NewServeMux()
	admin := auth.RequireAdmin(adminMgr, logger)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondSuccess(w, http.StatusOK, map[string]interface{}{
			"message": "Service is running",
		})
	})

	mux.HandleFunc("GET /db-check", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := db.PingContext(ctx); err != nil {
			logger.Error().Err(err).Msg("database ping failed")
			httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeDatabaseUnhealthy, "Database unreachable")
			return
		}
		if err := checker.CheckTable(ctx); err != nil {
			logger.Error().Err(err).Msg("boxers table check failed")
			httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeDatabaseUnhealthy, "Boxers table not ready")
			return
		}
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error().Err(err).Msg("redis ping failed")
			httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeServiceUnavailable, "Redis unreachable")
			return
		}
		httperrors.RespondSuccess(w, http.StatusOK, map[string]interface{}{
			"database_status": "healthy",
		})
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	// Boxer catalog
	mux.HandleFunc("POST /add-boxer", h.Boxers.AddBoxer)
	mux.Handle("DELETE /delete-boxer/{id}", admin(http.HandlerFunc(h.Boxers.DeleteBoxer)))
	mux.HandleFunc("GET /get-boxer-by-id/{id}", h.Boxers.GetBoxerByID)
	mux.HandleFunc("GET /get-boxer-by-name/{name}", h.Boxers.GetBoxerByName)
	mux.Handle("POST /clear-boxers", admin(http.HandlerFunc(h.Boxers.ClearBoxers)))

	// Ring and fights
	mux.HandleFunc("POST /enter-ring", h.Ring.EnterRing)
	mux.HandleFunc("GET /get-boxers", h.Ring.GetBoxers)
	mux.HandleFunc("GET /fight", h.Ring.Fight)
	mux.HandleFunc("POST /clear-ring", h.Ring.ClearRing)

	// Leaderboard
	mux.HandleFunc("GET /leaderboard", h.Leaderboard)

	// Fight feed
	if h.FightFeed != nil {
		mux.HandleFunc("GET /ws/fights", h.FightFeed)
	}

	var handler http.Handler = mux
	handler = metrics.Instrument(handler)
	handler = RequestID(logger)(handler)

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}

// NewFightFeedHandler upgrades clients onto the fight-feed hub.
func NewFightFeedHandler(hub *ws.Hub, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := WSUpgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn().Err(err).Msg("websocket upgrade failed")
			return
		}

		wsConn := ws.NewConnection(conn, logger)
		id := hub.RegisterConnection(wsConn)

		go wsConn.WritePump()
		go wsConn.ReadPump(func() {
			hub.UnregisterConnection(id)
		})
	}
}
