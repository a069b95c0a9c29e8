package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/voteboard/api/internal/core/domain"
)

type VoteRepository interface {
	// Upsert inserts the vote or, when the voter already voted on the poll,
	// replaces the earlier choice and timestamp in place. Implementations
	// must make this atomic so concurrent revotes cannot produce two rows.
	Upsert(ctx context.Context, vote *domain.Vote) error
	GetByPoll(ctx context.Context, pollID uuid.UUID) ([]domain.Vote, error)
	GetByVoter(ctx context.Context, pollID, voterID uuid.UUID) (*domain.Vote, error)
}

type CastVoteInput struct {
	PollID   uuid.UUID
	ChoiceID uuid.UUID
	VoterID  uuid.UUID
}

type VoteService interface {
	CastVote(ctx context.Context, input CastVoteInput) (*domain.Vote, error)
	GetMyVote(ctx context.Context, pollID, voterID uuid.UUID) (*domain.Vote, error)
}
