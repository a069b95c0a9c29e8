package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/voteboard/api/internal/core/domain"
)

type PollResultRepository interface {
	SummarizeVotes(ctx context.Context, pollID uuid.UUID) error
	GetPollResults(ctx context.Context, pollID uuid.UUID) ([]domain.PollResult, error)
}

type TallyService interface {
	// CountVotes recomputes the tally from the current vote set.
	CountVotes(ctx context.Context, pollID uuid.UUID) ([]domain.ChoiceVoteCount, error)
	// SummarizeAll refreshes the materialized results for every poll.
	SummarizeAll(ctx context.Context) error
}
