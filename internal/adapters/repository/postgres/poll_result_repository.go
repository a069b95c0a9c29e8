package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/voteboard/api/internal/core/domain"
	"github.com/voteboard/api/internal/core/ports"
)

type pollResultRepository struct {
	db *sql.DB
}

func NewPollResultRepository(db *sql.DB) ports.PollResultRepository {
	return &pollResultRepository{
		db: db,
	}
}

func (r *pollResultRepository) SummarizeVotes(ctx context.Context, pollID uuid.UUID) error {
	query := `
		INSERT INTO poll_results (poll_id, choice_id, vote_count, last_updated_at)
		SELECT c.poll_id, c.id, COUNT(v.id), NOW()
		FROM choices c
		LEFT JOIN votes v ON v.choice_id = c.id
		WHERE c.poll_id = $1
		GROUP BY c.poll_id, c.id
		ON CONFLICT (poll_id, choice_id) DO UPDATE
		SET vote_count = EXCLUDED.vote_count,
		    last_updated_at = NOW();
	`

	_, err := r.db.ExecContext(ctx, query, pollID)
	if err != nil {
		return fmt.Errorf("failed to summarize votes for poll %s: %w", pollID, err)
	}

	return nil
}

func (r *pollResultRepository) GetPollResults(ctx context.Context, pollID uuid.UUID) ([]domain.PollResult, error) {
	query := `
		SELECT pr.poll_id, pr.choice_id, pr.vote_count, pr.last_updated_at
		FROM poll_results pr
		JOIN choices c ON c.id = pr.choice_id
		WHERE pr.poll_id = $1
		ORDER BY c.position
	`

	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch poll results: %w", err)
	}
	defer rows.Close()

	var results []domain.PollResult
	for rows.Next() {
		var res domain.PollResult
		if err := rows.Scan(&res.PollID, &res.ChoiceID, &res.VoteCount, &res.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating poll results: %w", err)
	}

	return results, nil
}
