package catalog

import (
	"errors"
	"time"
)

var (
	ErrExerciseTypeNotFound = errors.New("exercise type not found")
	ErrExerciseTypeExists   = errors.New("exercise type already exists")
)

// MuscleGroup holds the canonical muscle group names. Exercise types and
// weekly volume rows only ever use these values.
var MuscleGroup = struct {
	Chest     string
	Back      string
	Legs      string
	Shoulders string
	Arms      string
	Core      string
}{
	Chest:     "chest",
	Back:      "back",
	Legs:      "legs",
	Shoulders: "shoulders",
	Arms:      "arms",
	Core:      "core",
}

var MuscleGroups = []string{
	MuscleGroup.Chest,
	MuscleGroup.Back,
	MuscleGroup.Legs,
	MuscleGroup.Shoulders,
	MuscleGroup.Arms,
	MuscleGroup.Core,
}

type ExerciseType struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MuscleGroups []string  `json:"muscleGroups"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
