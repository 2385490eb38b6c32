package progression

import "time"

// UserProgression tracks the current working weight and how many sessions
// in a row the trainee has completed at that weight, per (user, exercise).
type UserProgression struct {
	UserID           string    `json:"userId"`
	ExerciseID       string    `json:"exerciseId"`
	CurrentWeight    float64   `json:"currentWeight"`
	SessionsAtWeight int       `json:"sessionsAtWeight"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// Apply runs the state transition for a newly reported weight:
//   - heavier lift starts a fresh progression step, the counter resets to 1
//   - a repeat at the same weight bumps the counter
//   - a lighter lift lowers the tracked weight but keeps the counter,
//     lowering the weight is not a progression reset
func (up *UserProgression) Apply(newWeight float64, now time.Time) {
	switch {
	case newWeight > up.CurrentWeight:
		up.CurrentWeight = newWeight
		up.SessionsAtWeight = 1
	case newWeight == up.CurrentWeight:
		up.SessionsAtWeight++
	default:
		up.CurrentWeight = newWeight
	}
	up.LastUpdated = now
}
