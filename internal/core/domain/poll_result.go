package domain

import (
	"time"

	"github.com/google/uuid"
)

// PollResult is a materialized tally row maintained by the summarizer job.
// The live tally is always recomputed from votes; this table only serves
// reads that can tolerate staleness, such as poll listings.
type PollResult struct {
	PollID        uuid.UUID `json:"poll_id"`
	ChoiceID      uuid.UUID `json:"choice_id"`
	VoteCount     int64     `json:"vote_count"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}
