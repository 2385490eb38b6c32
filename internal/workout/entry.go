package workout

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEntryNotFound = errors.New("workout entry not found")
	ErrInvalidInput  = errors.New("invalid input")
)

// Entry is a single logged exercise within a workout session.
type Entry struct {
	ID         int       `json:"id"`
	UserID     string    `json:"userId"`
	ExerciseID string    `json:"exerciseId"`
	Sets       int       `json:"sets"`
	Reps       int       `json:"reps"`
	Weight     float64   `json:"weight"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (e Entry) Validate() error {
	if e.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if e.ExerciseID == "" {
		return fmt.Errorf("%w: exercise id is required", ErrInvalidInput)
	}
	if e.Sets <= 0 {
		return fmt.Errorf("%w: sets must be greater than 0", ErrInvalidInput)
	}
	if e.Reps <= 0 {
		return fmt.Errorf("%w: reps must be greater than 0", ErrInvalidInput)
	}
	if e.Weight < 0 {
		return fmt.Errorf("%w: weight must not be negative", ErrInvalidInput)
	}
	return nil
}
