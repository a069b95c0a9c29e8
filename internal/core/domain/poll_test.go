package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() PollRequest {
	return PollRequest{
		Question: "What should we have for lunch?",
		Choices: []ChoiceRequest{
			{Text: "Pizza"},
			{Text: "Sushi"},
		},
		PollLength: PollLength{Days: 1, Hours: 0},
	}
}

func TestValidatePollRequest(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*PollRequest)
		wantField string
	}{
		{
			name:   "valid request",
			mutate: func(r *PollRequest) {},
		},
		{
			name:   "question of exactly 140 characters",
			mutate: func(r *PollRequest) { r.Question = strings.Repeat("q", 140) },
		},
		{
			name:      "blank question",
			mutate:    func(r *PollRequest) { r.Question = "   " },
			wantField: "question",
		},
		{
			name:      "question of 141 characters",
			mutate:    func(r *PollRequest) { r.Question = strings.Repeat("q", 141) },
			wantField: "question",
		},
		{
			name:      "single choice",
			mutate:    func(r *PollRequest) { r.Choices = r.Choices[:1] },
			wantField: "choices",
		},
		{
			name: "seven choices",
			mutate: func(r *PollRequest) {
				r.Choices = make([]ChoiceRequest, 7)
				for i := range r.Choices {
					r.Choices[i] = ChoiceRequest{Text: "option"}
				}
			},
			wantField: "choices",
		},
		{
			name:      "blank choice text",
			mutate:    func(r *PollRequest) { r.Choices[1].Text = "" },
			wantField: "choices[1].text",
		},
		{
			name:      "too many days",
			mutate:    func(r *PollRequest) { r.PollLength.Days = 8 },
			wantField: "pollLength",
		},
		{
			name:      "negative days",
			mutate:    func(r *PollRequest) { r.PollLength.Days = -1 },
			wantField: "pollLength",
		},
		{
			name:      "too many hours",
			mutate:    func(r *PollRequest) { r.PollLength.Hours = 24 },
			wantField: "pollLength",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := ValidatePollRequest(req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestNewPollRejectsZeroWindow(t *testing.T) {
	req := validRequest()
	req.PollLength = PollLength{Days: 0, Hours: 0}

	_, err := NewPoll(req, nil, time.Now())
	assert.ErrorIs(t, err, ErrInvalidPoll)
}

func TestNewPollComputesExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		length PollLength
		want   time.Duration
	}{
		{"one hour", PollLength{Days: 0, Hours: 1}, time.Hour},
		{"one day", PollLength{Days: 1, Hours: 0}, 24 * time.Hour},
		{"max window", PollLength{Days: 7, Hours: 23}, 7*24*time.Hour + 23*time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.PollLength = tt.length

			poll, err := NewPoll(req, nil, now)
			require.NoError(t, err)
			assert.Equal(t, now, poll.CreatedAt)
			assert.Equal(t, now.Add(tt.want), poll.ExpiresAt)
		})
	}
}

func TestNewPollPreservesChoiceOrder(t *testing.T) {
	req := validRequest()
	req.Choices = []ChoiceRequest{{Text: "A"}, {Text: "B"}, {Text: "C"}}

	creator := uuid.New()
	poll, err := NewPoll(req, &creator, time.Now())
	require.NoError(t, err)

	require.Len(t, poll.Choices, 3)
	for i, want := range []string{"A", "B", "C"} {
		assert.Equal(t, want, poll.Choices[i].Text)
		assert.Equal(t, i, poll.Choices[i].Position)
		assert.Equal(t, poll.ID, poll.Choices[i].PollID)
		assert.NotEqual(t, uuid.Nil, poll.Choices[i].ID)
	}
	require.NotNil(t, poll.CreatorID)
	assert.Equal(t, creator, *poll.CreatorID)
}

func TestNewPollWithoutCreator(t *testing.T) {
	poll, err := NewPoll(validRequest(), nil, time.Now())
	require.NoError(t, err)
	assert.Nil(t, poll.CreatorID)
}

func TestNewPollValidatesRequest(t *testing.T) {
	req := validRequest()
	req.Question = ""

	_, err := NewPoll(req, nil, time.Now())
	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestPollIsOpen(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	req := validRequest()
	req.PollLength = PollLength{Days: 1, Hours: 0}

	poll, err := NewPoll(req, nil, created)
	require.NoError(t, err)

	assert.True(t, poll.IsOpen(created))
	assert.True(t, poll.IsOpen(created.Add(23*time.Hour+59*time.Minute)))
	// closure is inclusive of the expiry instant
	assert.False(t, poll.IsOpen(created.Add(24*time.Hour)))
	assert.False(t, poll.IsOpen(created.Add(24*time.Hour+time.Minute)))
}

func TestChoiceByID(t *testing.T) {
	poll, err := NewPoll(validRequest(), nil, time.Now())
	require.NoError(t, err)

	c, ok := poll.ChoiceByID(poll.Choices[1].ID)
	require.True(t, ok)
	assert.Equal(t, "Sushi", c.Text)

	_, ok = poll.ChoiceByID(uuid.New())
	assert.False(t, ok)
}
