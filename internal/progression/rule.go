package progression

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrRuleNotFound        = errors.New("progression rule not found")
	ErrRuleExists          = errors.New("progression rule already exists")
	ErrProgressionNotFound = errors.New("user progression not found")
)

// Rule holds the per-exercise progression parameters: how much to add
// once the trainee completes targetSessions sessions at the same weight,
// and how big a drop counts as a deload signal.
type Rule struct {
	ExerciseID      string    `json:"exerciseId"`
	Increment       float64   `json:"increment"`
	DeloadThreshold float64   `json:"deloadThreshold"`
	TargetSessions  int       `json:"targetSessions"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (r Rule) Validate() error {
	if r.ExerciseID == "" {
		return fmt.Errorf("%w: exercise id is required", ErrInvalidInput)
	}
	if r.Increment <= 0 {
		return fmt.Errorf("%w: increment must be greater than 0", ErrInvalidInput)
	}
	if r.DeloadThreshold <= 0 || r.DeloadThreshold >= 1 {
		return fmt.Errorf("%w: deloadThreshold must be in (0, 1)", ErrInvalidInput)
	}
	if r.TargetSessions <= 0 {
		return fmt.Errorf("%w: targetSessions must be greater than 0", ErrInvalidInput)
	}
	return nil
}

// RuleUpdate is a partial rule change, nil fields are left untouched.
type RuleUpdate struct {
	Increment       *float64 `json:"increment,omitempty"`
	DeloadThreshold *float64 `json:"deloadThreshold,omitempty"`
	TargetSessions  *int     `json:"targetSessions,omitempty"`
}

func (ru RuleUpdate) Validate() error {
	if ru.Increment == nil && ru.DeloadThreshold == nil && ru.TargetSessions == nil {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if ru.Increment != nil && *ru.Increment <= 0 {
		return fmt.Errorf("%w: increment must be greater than 0", ErrInvalidInput)
	}
	if ru.DeloadThreshold != nil && (*ru.DeloadThreshold <= 0 || *ru.DeloadThreshold >= 1) {
		return fmt.Errorf("%w: deloadThreshold must be in (0, 1)", ErrInvalidInput)
	}
	if ru.TargetSessions != nil && *ru.TargetSessions <= 0 {
		return fmt.Errorf("%w: targetSessions must be greater than 0", ErrInvalidInput)
	}
	return nil
}
