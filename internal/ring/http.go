package ring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ringside-labs/boxing-platform/internal/boxer"
	httperrors "github.com/ringside-labs/boxing-platform/pkg/http/errors"
)

// BoxerLookup resolves entrants by name before they step into the ring.
type BoxerLookup interface {
	GetByName(ctx context.Context, name string) (boxer.Boxer, error)
}

// EnterRingRequest names the boxer stepping into the ring.
type EnterRingRequest struct {
	Name string `json:"name"`
}

// HTTPHandlers provides REST endpoints for ring and fight operations.
type HTTPHandlers struct {
	svc    *Service
	boxers BoxerLookup
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for ring endpoints.
func NewHTTPHandlers(svc *Service, boxers BoxerLookup, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		boxers: boxers,
		logger: logger.With().Str("component", "ring_http").Logger(),
	}
}

// EnterRing handles POST /enter-ring
func (h *HTTPHandlers) EnterRing(w http.ResponseWriter, r *http.Request) {
	var req EnterRingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}
	if req.Name == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "Boxer name is required", "name")
		return
	}

	b, err := h.boxers.GetByName(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, boxer.ErrNotFound) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeBoxerNotFound, err.Error())
			return
		}
		h.logger.Error().Err(err).Str("name", req.Name).Msg("entrant lookup failed")
		httperrors.RespondInternalError(w, "Failed to look up boxer")
		return
	}

	if err := h.svc.Enter(r.Context(), b); err != nil {
		switch {
		case errors.Is(err, ErrRingFull):
			httperrors.RespondError(w, http.StatusConflict, httperrors.ErrCodeRingFull, err.Error())
		case errors.Is(err, ErrAlreadyInRing):
			httperrors.RespondError(w, http.StatusConflict, httperrors.ErrCodeAlreadyInRing, err.Error())
		default:
			h.logger.Error().Err(err).Str("name", req.Name).Msg("enter ring failed")
			httperrors.RespondInternalError(w, "Failed to enter ring")
		}
		return
	}

	httperrors.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Boxer '%s' entered the ring", b.Name),
		"boxer":   b,
	})
}

// GetBoxers handles GET /get-boxers
func (h *HTTPHandlers) GetBoxers(w http.ResponseWriter, r *http.Request) {
	entrants, err := h.svc.Boxers(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("ring listing failed")
		httperrors.RespondInternalError(w, "Failed to list boxers in the ring")
		return
	}
	if entrants == nil {
		entrants = []boxer.Boxer{}
	}

	httperrors.RespondSuccess(w, http.StatusOK, map[string]interface{}{"boxers": entrants})
}

// Fight handles GET /fight
func (h *HTTPHandlers) Fight(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.svc.Fight(r.Context())
	if err != nil {
		if errors.Is(err, ErrNotEnoughBoxers) {
			httperrors.RespondBadRequest(w, httperrors.ErrCodeNotEnoughBoxers, err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("fight simulation failed")
		httperrors.RespondError(w, http.StatusInternalServerError, httperrors.ErrCodeFightFailed, "Fight simulation failed")
		return
	}

	httperrors.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Fight complete, winner: %s", outcome.Winner.Name),
		"winner":  outcome.Winner.Name,
		"loser":   outcome.Loser.Name,
	})
}

// ClearRing handles POST /clear-ring
func (h *HTTPHandlers) ClearRing(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("clear ring failed")
		httperrors.RespondInternalError(w, "Failed to clear ring")
		return
	}

	httperrors.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Ring cleared",
	})
}
