package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pantryplan/pantryplan-backend/internal/domain"
)

// householdService defines the minimal interface needed by StateHandler.
type householdService interface {
	Load(ctx context.Context) (*domain.Document, error)
	Replace(ctx context.Context, doc *domain.Document) (*domain.Document, error)
}

// StateHandler serves the household document: GET returns the current
// document, POST replaces it wholesale (last write wins).
type StateHandler struct {
	svc householdService
	log *slog.Logger
}

// NewStateHandler creates a StateHandler.
func NewStateHandler(svc householdService, logger *slog.Logger) *StateHandler {
	return &StateHandler{svc: svc, log: logger.With("handler", "state")}
}

// Get handles GET /api/state.
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Load(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// Replace handles POST /api/state.
func (h *StateHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var doc domain.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.svc.Replace(r.Context(), &doc); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *StateHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
