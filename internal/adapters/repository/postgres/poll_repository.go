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

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryPoll := `
		INSERT INTO polls (id, question, creator_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = tx.ExecContext(ctx, queryPoll, poll.ID, poll.Question, creatorValue(poll.CreatorID), poll.CreatedAt, poll.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}

	queryChoice := `
		INSERT INTO choices (id, poll_id, text, position)
		VALUES ($1, $2, $3, $4)
	`
	stmt, err := tx.PrepareContext(ctx, queryChoice)
	if err != nil {
		return fmt.Errorf("failed to prepare choice statement: %w", err)
	}
	defer stmt.Close()

	for _, c := range poll.Choices {
		_, err = stmt.ExecContext(ctx, c.ID, c.PollID, c.Text, c.Position)
		if err != nil {
			return fmt.Errorf("failed to insert choice: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *pollRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	queryPoll := `
		SELECT id, question, creator_id, created_at, expires_at
		FROM polls
		WHERE id = $1
	`

	var poll domain.Poll
	var creator uuid.NullUUID
	err := r.db.QueryRowContext(ctx, queryPoll, id).Scan(
		&poll.ID, &poll.Question, &creator, &poll.CreatedAt, &poll.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}
	if creator.Valid {
		poll.CreatorID = &creator.UUID
	}

	choices, err := r.fetchChoices(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	poll.Choices = choices

	return &poll, nil
}

func (r *pollRepository) GetAll(ctx context.Context) ([]*domain.Poll, error) {
	query := `
		SELECT id, question, creator_id, created_at, expires_at
		FROM polls
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all polls: %w", err)
	}
	defer rows.Close()

	return r.scanPolls(ctx, rows)
}

func (r *pollRepository) List(ctx context.Context, limit, offset int) ([]*domain.Poll, error) {
	query := `
		SELECT p.id, p.question, p.creator_id, p.created_at, p.expires_at
		FROM polls p
		LEFT JOIN poll_results pr ON p.id = pr.poll_id
		GROUP BY p.id
		ORDER BY COALESCE(SUM(pr.vote_count), 0) DESC, p.created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list polls: %w", err)
	}
	defer rows.Close()

	return r.scanPolls(ctx, rows)
}

func (r *pollRepository) scanPolls(ctx context.Context, rows *sql.Rows) ([]*domain.Poll, error) {
	var polls []*domain.Poll
	for rows.Next() {
		var poll domain.Poll
		var creator uuid.NullUUID
		if err := rows.Scan(&poll.ID, &poll.Question, &creator, &poll.CreatedAt, &poll.ExpiresAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		if creator.Valid {
			poll.CreatorID = &creator.UUID
		}

		choices, err := r.fetchChoices(ctx, poll.ID)
		if err != nil {
			return nil, err
		}
		poll.Choices = choices

		polls = append(polls, &poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polls: %w", err)
	}
	return polls, nil
}

func (r *pollRepository) fetchChoices(ctx context.Context, pollID uuid.UUID) ([]domain.Choice, error) {
	queryChoices := `
		SELECT id, poll_id, text, position
		FROM choices
		WHERE poll_id = $1
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, queryChoices, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get poll choices: %w", err)
	}
	defer rows.Close()

	var choices []domain.Choice
	for rows.Next() {
		var c domain.Choice
		if err := rows.Scan(&c.ID, &c.PollID, &c.Text, &c.Position); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating choices: %w", err)
	}
	return choices, nil
}

func creatorValue(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}
