package boxer

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/ringside-labs/boxing-platform/pkg/http/errors"
)

// HTTPHandlers provides REST endpoints for the boxer catalog.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for boxer endpoints.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "boxer_http").Logger(),
	}
}

// AddBoxer handles POST /add-boxer
func (h *HTTPHandlers) AddBoxer(w http.ResponseWriter, r *http.Request) {
	var req NewBoxer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "Invalid JSON payload")
		return
	}

	b, err := h.svc.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateName):
			httperrors.RespondError(w, http.StatusConflict, httperrors.ErrCodeDuplicateBoxer, err.Error())
		default:
			httperrors.RespondBadRequest(w, httperrors.ErrCodeValidationFailed, err.Error())
		}
		return
	}

	httperrors.RespondSuccess(w, http.StatusCreated, map[string]interface{}{
		"message": fmt.Sprintf("Boxer '%s' added successfully", b.Name),
		"boxer":   b,
	})
}

// DeleteBoxer handles DELETE /delete-boxer/{id}
func (h *HTTPHandlers) DeleteBoxer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidBoxerID, "Boxer id must be an integer")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeBoxerNotFound, err.Error())
			return
		}
		h.logger.Error().Err(err).Int64("boxer_id", id).Msg("delete failed")
		httperrors.RespondInternalError(w, "Failed to delete boxer")
		return
	}

	httperrors.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("Boxer %d deleted successfully", id),
	})
}

// GetBoxerByID handles GET /get-boxer-by-id/{id}
func (h *HTTPHandlers) GetBoxerByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidBoxerID, "Boxer id must be an integer")
		return
	}

	b, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeBoxerNotFound, err.Error())
			return
		}
		h.logger.Error().Err(err).Int64("boxer_id", id).Msg("lookup failed")
		httperrors.RespondInternalError(w, "Failed to retrieve boxer")
		return
	}

	httperrors.RespondSuccess(w, http.StatusOK, map[string]interface{}{"boxer": b})
}

// GetBoxerByName handles GET /get-boxer-by-name/{name}
func (h *HTTPHandlers) GetBoxerByName(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeMissingField, "Boxer name is required")
		return
	}

	b, err := h.svc.GetByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeBoxerNotFound, err.Error())
			return
		}
		h.logger.Error().Err(err).Str("name", name).Msg("lookup failed")
		httperrors.RespondInternalError(w, "Failed to retrieve boxer")
		return
	}

	httperrors.RespondSuccess(w, http.StatusOK, map[string]interface{}{"boxer": b})
}

// ClearBoxers handles POST /clear-boxers
func (h *HTTPHandlers) ClearBoxers(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearAll(r.Context()); err != nil {
		h.logger.Error().Err(err).Msg("clear boxers failed")
		httperrors.RespondInternalError(w, "Failed to clear boxers")
		return
	}

	httperrors.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "All boxers cleared",
	})
}
