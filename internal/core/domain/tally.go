package domain

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// ChoiceVoteCount pairs a choice with its aggregated vote count. It is a
// read model computed on demand, never persisted.
type ChoiceVoteCount struct {
	ChoiceID  uuid.UUID `json:"choice_id"`
	VoteCount int64     `json:"vote_count"`
}

// Tally counts votes per choice. The result follows the poll's declared
// choice order, one entry per choice, zero when nobody picked it. Votes
// referencing a choice outside the poll are ignored.
func Tally(poll *Poll, votes []Vote) []ChoiceVoteCount {
	byChoice := lo.CountValuesBy(votes, func(v Vote) uuid.UUID {
		return v.ChoiceID
	})

	return lo.Map(poll.Choices, func(c Choice, _ int) ChoiceVoteCount {
		return ChoiceVoteCount{
			ChoiceID:  c.ID,
			VoteCount: int64(byChoice[c.ID]),
		}
	})
}
