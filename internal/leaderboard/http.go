package leaderboard

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ringside-labs/boxing-platform/internal/db/repository"
	httperrors "github.com/ringside-labs/boxing-platform/pkg/http/errors"
)

// HTTPHandler exposes the REST endpoint for leaderboard queries.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs a leaderboard HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "leaderboard_http").Logger(),
	}
}

// HandleGet responds with the current leaderboard.
// Route: GET /leaderboard?sort=wins|win_pct (default: wins)
func (h *HTTPHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = repository.SortByWins
	}

	ranking, err := h.svc.Top(r.Context(), sortBy)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidSort) {
			httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidSort, err.Error())
			return
		}
		h.logger.Error().Err(err).Str("sort", sortBy).Msg("leaderboard fetch failed")
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeLeaderboardFetchFailed, "Failed to fetch leaderboard")
		return
	}
	if ranking == nil {
		ranking = []repository.LeaderboardRow{}
	}

	httperrors.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"sort":        sortBy,
		"leaderboard": ranking,
		"retrievedAt": time.Now().UTC().Format(time.RFC3339),
	})
}
