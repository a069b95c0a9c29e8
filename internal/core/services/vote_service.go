package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/voteboard/api/internal/core/domain"
	"github.com/voteboard/api/internal/core/ports"
)

type voteService struct {
	pollRepo ports.PollRepository
	voteRepo ports.VoteRepository
}

func NewVoteService(pollRepo ports.PollRepository, voteRepo ports.VoteRepository) ports.VoteService {
	return &voteService{
		pollRepo: pollRepo,
		voteRepo: voteRepo,
	}
}

func (s *voteService) CastVote(ctx context.Context, input ports.CastVoteInput) (*domain.Vote, error) {
	poll, err := s.pollRepo.GetByID(ctx, input.PollID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if !poll.IsOpen(now) {
		return nil, domain.ErrPollClosed
	}

	if _, ok := poll.ChoiceByID(input.ChoiceID); !ok {
		return nil, domain.ErrUnknownChoice
	}

	vote := &domain.Vote{
		ID:       uuid.New(),
		PollID:   input.PollID,
		ChoiceID: input.ChoiceID,
		VoterID:  input.VoterID,
		CastAt:   now,
	}

	// The repository upsert replaces any earlier vote by this voter, so a
	// revote is last-writer-wins rather than a duplicate.
	if err := s.voteRepo.Upsert(ctx, vote); err != nil {
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}

	return vote, nil
}

func (s *voteService) GetMyVote(ctx context.Context, pollID, voterID uuid.UUID) (*domain.Vote, error) {
	vote, err := s.voteRepo.GetByVoter(ctx, pollID, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	if vote == nil {
		return nil, domain.ErrVoteNotFound
	}
	return vote, nil
}
