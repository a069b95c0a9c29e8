package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/voteboard/api/internal/core/domain"
	"github.com/voteboard/api/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// Upsert relies on the UNIQUE (poll_id, voter_id) constraint: a revote
// replaces the earlier row in place, so concurrent revotes by the same
// voter serialize inside the database instead of racing in Go.
func (r *voteRepository) Upsert(ctx context.Context, vote *domain.Vote) error {
	query := `
		INSERT INTO votes (id, poll_id, choice_id, voter_id, cast_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (poll_id, voter_id) DO UPDATE
		SET choice_id = EXCLUDED.choice_id,
		    cast_at = EXCLUDED.cast_at
	`
	_, err := r.db.ExecContext(ctx, query, vote.ID, vote.PollID, vote.ChoiceID, vote.VoterID, vote.CastAt)
	if err != nil {
		return fmt.Errorf("failed to upsert vote: %w", err)
	}
	return nil
}

func (r *voteRepository) GetByPoll(ctx context.Context, pollID uuid.UUID) ([]domain.Vote, error) {
	query := `
		SELECT id, poll_id, choice_id, voter_id, cast_at
		FROM votes
		WHERE poll_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get votes: %w", err)
	}
	defer rows.Close()

	var votes []domain.Vote
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.ID, &v.PollID, &v.ChoiceID, &v.VoterID, &v.CastAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}
	return votes, nil
}

func (r *voteRepository) GetByVoter(ctx context.Context, pollID, voterID uuid.UUID) (*domain.Vote, error) {
	query := `
		SELECT id, poll_id, choice_id, voter_id, cast_at
		FROM votes
		WHERE poll_id = $1 AND voter_id = $2
	`
	var v domain.Vote
	err := r.db.QueryRowContext(ctx, query, pollID, voterID).Scan(&v.ID, &v.PollID, &v.ChoiceID, &v.VoterID, &v.CastAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	return &v, nil
}
