package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/voteboard/api/internal/core/domain"
	"github.com/voteboard/api/internal/core/ports"
)

const pollsPerPage = 20

type pollService struct {
	repo ports.PollRepository
}

func NewPollService(repo ports.PollRepository) ports.PollService {
	return &pollService{
		repo: repo,
	}
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (*domain.Poll, error) {
	req := domain.PollRequest{
		Question: input.Question,
		Choices: lo.Map(input.Choices, func(text string, _ int) domain.ChoiceRequest {
			return domain.ChoiceRequest{Text: text}
		}),
		PollLength: domain.PollLength{
			Days:  input.LengthDays,
			Hours: input.LengthHours,
		},
	}

	poll, err := domain.NewPoll(req, input.CreatorID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, poll); err != nil {
		return nil, err
	}

	return poll, nil
}

func (s *pollService) GetPoll(ctx context.Context, id string) (*domain.Poll, error) {
	pollID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrInvalidPollID
	}

	return s.repo.GetByID(ctx, pollID)
}

func (s *pollService) ListPolls(ctx context.Context, input ports.ListPollsInput) ([]*domain.Poll, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	return s.repo.List(ctx, pollsPerPage, (page-1)*pollsPerPage)
}
