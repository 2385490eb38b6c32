package volume

import (
	"errors"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")

// WeeklyVolumeRow accumulates training volume per (user, muscle group, week).
// Volume only ever grows within a week, each new week starts a fresh row.
type WeeklyVolumeRow struct {
	UserID      string    `json:"userId"`
	MuscleGroup string    `json:"muscleGroup"`
	WeekStart   time.Time `json:"weekStart"`
	Volume      float64   `json:"volume"`
}

// WeekStartUTC returns the Monday-aligned start of the week containing t.
// All week boundary arithmetic is done in UTC, everywhere.
func WeekStartUTC(t time.Time) time.Time {
	t = t.UTC()
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(d.Weekday()) + 6) % 7 // Monday is 0
	return d.AddDate(0, 0, -offset)
}
