package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote records a voter's current selection on a poll. At most one vote
// exists per (poll, voter); a revote replaces the earlier row.
type Vote struct {
	ID       uuid.UUID `json:"id"`
	PollID   uuid.UUID `json:"poll_id"`
	ChoiceID uuid.UUID `json:"choice_id"`
	VoterID  uuid.UUID `json:"voter_id"`
	CastAt   time.Time `json:"cast_at"`
}
