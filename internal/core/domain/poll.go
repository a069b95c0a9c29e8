package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxQuestionLength = 140
	MinChoices        = 2
	MaxChoices        = 6
	MaxLengthDays     = 7
	MaxLengthHours    = 23
)

type Poll struct {
	ID        uuid.UUID  `json:"id"`
	Question  string     `json:"question"`
	CreatorID *uuid.UUID `json:"creator_id,omitempty"`
	Choices   []Choice   `json:"choices"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

type Choice struct {
	ID       uuid.UUID `json:"id"`
	PollID   uuid.UUID `json:"poll_id"`
	Text     string    `json:"text"`
	Position int       `json:"position"`
}

// PollRequest is the poll-creation payload as seen by the core,
// already decoded from whatever transport carried it.
type PollRequest struct {
	Question   string
	Choices    []ChoiceRequest
	PollLength PollLength
}

type ChoiceRequest struct {
	Text string
}

type PollLength struct {
	Days  int
	Hours int
}

func (l PollLength) Duration() time.Duration {
	return time.Duration(l.Days)*24*time.Hour + time.Duration(l.Hours)*time.Hour
}

// ValidatePollRequest checks payload shape only; the positive-window rule
// belongs to NewPoll. Returns a *ValidationError naming the offending field.
func ValidatePollRequest(req PollRequest) error {
	if strings.TrimSpace(req.Question) == "" {
		return &ValidationError{Field: "question", Message: "must not be blank"}
	}
	if utf8.RuneCountInString(req.Question) > MaxQuestionLength {
		return &ValidationError{Field: "question", Message: fmt.Sprintf("must be at most %d characters", MaxQuestionLength)}
	}
	if len(req.Choices) < MinChoices || len(req.Choices) > MaxChoices {
		return &ValidationError{Field: "choices", Message: fmt.Sprintf("must have between %d and %d entries", MinChoices, MaxChoices)}
	}
	for i, c := range req.Choices {
		if strings.TrimSpace(c.Text) == "" {
			return &ValidationError{Field: fmt.Sprintf("choices[%d].text", i), Message: "must not be blank"}
		}
	}
	if req.PollLength.Days < 0 || req.PollLength.Days > MaxLengthDays {
		return &ValidationError{Field: "pollLength", Message: fmt.Sprintf("days must be between 0 and %d", MaxLengthDays)}
	}
	if req.PollLength.Hours < 0 || req.PollLength.Hours > MaxLengthHours {
		return &ValidationError{Field: "pollLength", Message: fmt.Sprintf("hours must be between 0 and %d", MaxLengthHours)}
	}
	return nil
}

// NewPoll builds a poll from a creation request as of now. creatorID may be
// nil when the request carries no authenticated principal; the poll is still
// created, just without an auditor.
func NewPoll(req PollRequest, creatorID *uuid.UUID, now time.Time) (*Poll, error) {
	if err := ValidatePollRequest(req); err != nil {
		return nil, err
	}
	if req.PollLength.Duration() <= 0 {
		return nil, ErrInvalidPoll
	}

	pollID := uuid.New()
	poll := &Poll{
		ID:        pollID,
		Question:  req.Question,
		CreatorID: creatorID,
		CreatedAt: now,
		ExpiresAt: now.Add(req.PollLength.Duration()),
	}

	for i, c := range req.Choices {
		poll.Choices = append(poll.Choices, Choice{
			ID:       uuid.New(),
			PollID:   pollID,
			Text:     c.Text,
			Position: i,
		})
	}

	return poll, nil
}

// IsOpen reports whether the poll still accepts votes at the given instant.
// The state is derived; nothing is stored when a poll closes.
func (p *Poll) IsOpen(now time.Time) bool {
	return now.Before(p.ExpiresAt)
}

// ChoiceByID returns the poll's choice with the given id, if any.
func (p *Poll) ChoiceByID(id uuid.UUID) (*Choice, bool) {
	for i := range p.Choices {
		if p.Choices[i].ID == id {
			return &p.Choices[i], true
		}
	}
	return nil, false
}
