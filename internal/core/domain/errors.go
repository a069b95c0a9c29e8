package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPollNotFound  = errors.New("poll not found")
	ErrInvalidPollID = errors.New("invalid poll id")
	ErrInvalidPoll   = errors.New("poll must have a positive voting window")
	ErrPollClosed    = errors.New("poll is closed for voting")
	ErrUnknownChoice = errors.New("choice does not belong to this poll")
	ErrVoteNotFound  = errors.New("user did not vote on this poll")
	ErrInternal      = errors.New("internal server error")
)

// ValidationError identifies the request field that failed validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
