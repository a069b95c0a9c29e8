package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/voteboard/api/internal/core/domain"
	"github.com/voteboard/api/internal/core/ports"
)

type TallyHandler struct {
	service ports.TallyService
}

func NewTallyHandler(service ports.TallyService) *TallyHandler {
	return &TallyHandler{
		service: service,
	}
}

// GetResults returns one entry per choice in the poll's declared order,
// zero-count choices included.
func (h *TallyHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollIDStr := chi.URLParam(r, "id")
	pollID, err := uuid.Parse(pollIDStr)
	if err != nil {
		http.Error(w, "invalid poll id", http.StatusBadRequest)
		return
	}

	counts, err := h.service.CountVotes(r.Context(), pollID)
	if err != nil {
		if errors.Is(err, domain.ErrPollNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(counts); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
