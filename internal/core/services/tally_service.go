package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/voteboard/api/internal/core/domain"
	"github.com/voteboard/api/internal/core/ports"
)

type tallyService struct {
	pollRepo   ports.PollRepository
	voteRepo   ports.VoteRepository
	resultRepo ports.PollResultRepository
}

func NewTallyService(pollRepo ports.PollRepository, voteRepo ports.VoteRepository, resultRepo ports.PollResultRepository) ports.TallyService {
	return &tallyService{
		pollRepo:   pollRepo,
		voteRepo:   voteRepo,
		resultRepo: resultRepo,
	}
}

func (s *tallyService) CountVotes(ctx context.Context, pollID uuid.UUID) ([]domain.ChoiceVoteCount, error) {
	poll, err := s.pollRepo.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}

	votes, err := s.voteRepo.GetByPoll(ctx, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch votes: %w", err)
	}

	return domain.Tally(poll, votes), nil
}

func (s *tallyService) SummarizeAll(ctx context.Context) error {
	polls, err := s.pollRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch all polls: %w", err)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(polls))

	for _, poll := range polls {
		wg.Add(1)
		go func(pID uuid.UUID) {
			defer wg.Done()
			if err := s.resultRepo.SummarizeVotes(ctx, pID); err != nil {
				errChan <- fmt.Errorf("failed to summarize poll %s: %w", pID, err)
			}
		}(poll.ID)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}

	return nil
}
