package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/voteboard/api/internal/core/domain"
	"github.com/voteboard/api/internal/core/ports"
)

type PollHandler struct {
	service ports.PollService
}

func NewPollHandler(service ports.PollService) *PollHandler {
	return &PollHandler{
		service: service,
	}
}

type createPollRequest struct {
	Question   string            `json:"question"`
	Choices    []choiceRequest   `json:"choices"`
	PollLength pollLengthRequest `json:"pollLength"`
}

type choiceRequest struct {
	Text string `json:"text"`
}

type pollLengthRequest struct {
	Days  int `json:"days"`
	Hours int `json:"hours"`
}

// CreatePoll godoc
// @Summary      Creates a poll
// @Description  Creates a poll with a question, 2 to 6 choices and a voting window
// @Tags         polls
// @Accept       json
// @Success      201
// @Failure      400
// @Router       /api/polls [post]
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.CreatePollInput{
		Question: req.Question,
		Choices: lo.Map(req.Choices, func(c choiceRequest, _ int) string {
			return c.Text
		}),
		LengthDays:  req.PollLength.Days,
		LengthHours: req.PollLength.Hours,
	}

	// Anonymous creation is allowed; the creator is only recorded when the
	// request carries an authenticated user.
	if userID, ok := r.Context().Value(UserIDKey).(uuid.UUID); ok {
		input.CreatorID = &userID
	}

	poll, err := h.service.Create(r.Context(), input)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(vErr)
			return
		}
		if errors.Is(err, domain.ErrInvalidPoll) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(poll); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing poll id", http.StatusBadRequest)
		return
	}

	poll, err := h.service.GetPoll(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPollID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrPollNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(poll); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	polls, err := h.service.ListPolls(r.Context(), ports.ListPollsInput{Page: page})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if polls == nil {
		polls = []*domain.Poll{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(polls); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
