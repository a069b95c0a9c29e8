package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/voteboard/api/internal/core/domain"
)

type fakePollRepo struct {
	mu    sync.Mutex
	polls map[uuid.UUID]*domain.Poll
}

func newFakePollRepo() *fakePollRepo {
	return &fakePollRepo{polls: make(map[uuid.UUID]*domain.Poll)}
}

func (r *fakePollRepo) Save(_ context.Context, poll *domain.Poll) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.polls[poll.ID] = poll
	return nil
}

func (r *fakePollRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	poll, ok := r.polls[id]
	if !ok {
		return nil, domain.ErrPollNotFound
	}
	return poll, nil
}

func (r *fakePollRepo) GetAll(_ context.Context) ([]*domain.Poll, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var polls []*domain.Poll
	for _, p := range r.polls {
		polls = append(polls, p)
	}
	return polls, nil
}

func (r *fakePollRepo) List(_ context.Context, limit, offset int) ([]*domain.Poll, error) {
	polls, _ := r.GetAll(context.Background())
	if offset >= len(polls) {
		return nil, nil
	}
	end := offset + limit
	if end > len(polls) {
		end = len(polls)
	}
	return polls[offset:end], nil
}

type fakeVoteRepo struct {
	mu    sync.Mutex
	votes map[uuid.UUID]map[uuid.UUID]domain.Vote // pollID -> voterID -> vote
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[uuid.UUID]map[uuid.UUID]domain.Vote)}
}

func (r *fakeVoteRepo) Upsert(_ context.Context, vote *domain.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	byVoter, ok := r.votes[vote.PollID]
	if !ok {
		byVoter = make(map[uuid.UUID]domain.Vote)
		r.votes[vote.PollID] = byVoter
	}
	// keep the original row id on replacement, like the SQL upsert does
	if prev, exists := byVoter[vote.VoterID]; exists {
		vote.ID = prev.ID
	}
	byVoter[vote.VoterID] = *vote
	return nil
}

func (r *fakeVoteRepo) GetByPoll(_ context.Context, pollID uuid.UUID) ([]domain.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var votes []domain.Vote
	for _, v := range r.votes[pollID] {
		votes = append(votes, v)
	}
	return votes, nil
}

func (r *fakeVoteRepo) GetByVoter(_ context.Context, pollID, voterID uuid.UUID) (*domain.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.votes[pollID][voterID]; ok {
		return &v, nil
	}
	return nil, nil
}

type fakeResultRepo struct {
	mu         sync.Mutex
	summarized []uuid.UUID
}

func (r *fakeResultRepo) SummarizeVotes(_ context.Context, pollID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summarized = append(r.summarized, pollID)
	return nil
}

func (r *fakeResultRepo) GetPollResults(_ context.Context, _ uuid.UUID) ([]domain.PollResult, error) {
	return nil, nil
}

type fakeRoleRepo struct {
	roles  map[domain.RoleName]*domain.Role
	grants map[uuid.UUID][]int64
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{
		roles: map[domain.RoleName]*domain.Role{
			domain.RoleUser:  {ID: 1, Name: domain.RoleUser},
			domain.RoleAdmin: {ID: 2, Name: domain.RoleAdmin},
		},
		grants: make(map[uuid.UUID][]int64),
	}
}

func (r *fakeRoleRepo) FindByName(_ context.Context, name domain.RoleName) (*domain.Role, error) {
	return r.roles[name], nil
}

func (r *fakeRoleRepo) GrantToUser(_ context.Context, userID uuid.UUID, roleID int64) error {
	r.grants[userID] = append(r.grants[userID], roleID)
	return nil
}
