package suggest

import (
	"context"
	"fmt"
	"time"

	"github.com/dstanisic/liftcoach/internal/catalog"
	"github.com/dstanisic/liftcoach/internal/telemetry/tracing"
	"github.com/dstanisic/liftcoach/internal/volume"
	"github.com/dstanisic/liftcoach/internal/workout"

	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultLimit        = 5
	DefaultLookbackDays = 7
)

// Priority values for muscle group suggestions.
var Priority = struct {
	High   string
	Medium string
	Low    string
}{
	High:   "high",
	Medium: "medium",
	Low:    "low",
}

type MuscleGroupSuggestion struct {
	MuscleGroup string `json:"muscleGroup"`
	Reason      string `json:"reason"`
	Priority    string `json:"priority"`
}

// complementaryPairs maps each muscle group to its training counterpart.
// A group is only flagged as low priority when its pair has been trained
// noticeably more often.
var complementaryPairs = map[string]string{
	catalog.MuscleGroup.Chest:     catalog.MuscleGroup.Back,
	catalog.MuscleGroup.Back:      catalog.MuscleGroup.Chest,
	catalog.MuscleGroup.Legs:      catalog.MuscleGroup.Core,
	catalog.MuscleGroup.Core:      catalog.MuscleGroup.Legs,
	catalog.MuscleGroup.Shoulders: catalog.MuscleGroup.Arms,
	catalog.MuscleGroup.Arms:      catalog.MuscleGroup.Shoulders,
}

//go:generate mockgen -source=$GOFILE -destination=ranker_mocks_test.go -package=suggest_test

type sessionHistory interface {
	RecentEntries(ctx context.Context, userID string, lookbackDays int) ([]workout.Entry, error)
}

type volumeReader interface {
	WeekRows(ctx context.Context, userID string, weekStart time.Time) ([]volume.WeeklyVolumeRow, error)
}

type muscleGroupResolver interface {
	MuscleGroupsFor(ctx context.Context, exerciseID string) ([]string, error)
}

// Config holds the ranking cutoffs. Zero values are replaced with the
// defaults used in production.
type Config struct {
	HighVolumeRatio   float64
	MediumVolumeRatio float64
	PairFrequencyGap  int
}

func (c *Config) setDefaults() {
	if c.HighVolumeRatio == 0 {
		c.HighVolumeRatio = 0.3
	}
	if c.MediumVolumeRatio == 0 {
		c.MediumVolumeRatio = 0.5
	}
	if c.PairFrequencyGap == 0 {
		c.PairFrequencyGap = 1
	}
}

// Ranker combines recent training frequency with the current week's volume
// to produce a prioritized list of muscle groups to train next.
type Ranker struct {
	history  sessionHistory
	volumes  volumeReader
	resolver muscleGroupResolver
	cfg      Config
	now      func() time.Time
}

func NewRanker(
	history sessionHistory,
	volumes volumeReader,
	resolver muscleGroupResolver,
	cfg Config,
) *Ranker {
	cfg.setDefaults()
	return &Ranker{
		history:  history,
		volumes:  volumes,
		resolver: resolver,
		cfg:      cfg,
		now:      time.Now,
	}
}

func baselineSuggestions(limit int) []MuscleGroupSuggestion {
	suggestions := []MuscleGroupSuggestion{
		{MuscleGroup: catalog.MuscleGroup.Chest, Reason: "no recent sessions recorded", Priority: Priority.High},
		{MuscleGroup: catalog.MuscleGroup.Back, Reason: "no recent sessions recorded", Priority: Priority.High},
		{MuscleGroup: catalog.MuscleGroup.Legs, Reason: "no recent sessions recorded", Priority: Priority.High},
		{MuscleGroup: catalog.MuscleGroup.Shoulders, Reason: "no recent sessions recorded", Priority: Priority.Medium},
		{MuscleGroup: catalog.MuscleGroup.Arms, Reason: "no recent sessions recorded", Priority: Priority.Low},
	}
	if limit < len(suggestions) {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// SuggestedWorkouts ranks the canonical muscle groups for the user,
// highest priority first, and returns at most limit entries. Non-positive
// limit and lookbackDays fall back to the defaults.
func (ranker *Ranker) SuggestedWorkouts(
	ctx context.Context,
	userID string,
	limit int,
	lookbackDays int,
) (_ []MuscleGroupSuggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "suggest.ranker.suggestedWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if limit <= 0 {
		limit = DefaultLimit
	}
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	span.SetAttributes(
		attribute.String("userId", userID),
		attribute.Int("limit", limit),
		attribute.Int("lookbackDays", lookbackDays),
	)

	entries, err := ranker.history.RecentEntries(ctx, userID, lookbackDays)
	if err != nil {
		return nil, fmt.Errorf("recent entries: %w", err)
	}
	if len(entries) == 0 {
		return baselineSuggestions(limit), nil
	}

	frequency, err := ranker.frequencyPerGroup(ctx, entries)
	if err != nil {
		return nil, err
	}

	rows, err := ranker.volumes.WeekRows(ctx, userID, volume.WeekStartUTC(ranker.now()))
	if err != nil {
		return nil, fmt.Errorf("week rows: %w", err)
	}

	volumePerGroup := make(map[string]float64, len(rows))
	var average float64
	if len(rows) > 0 {
		var total float64
		for _, row := range rows {
			volumePerGroup[row.MuscleGroup] = row.Volume
			total += row.Volume
		}
		average = total / float64(len(rows))
	}

	var high, medium, low []MuscleGroupSuggestion
	for _, muscleGroup := range catalog.MuscleGroups {
		freq := frequency[muscleGroup]
		vol := volumePerGroup[muscleGroup]

		switch {
		case freq == 0 && vol < ranker.cfg.HighVolumeRatio*average:
			high = append(high, MuscleGroupSuggestion{
				MuscleGroup: muscleGroup,
				Reason: fmt.Sprintf(
					"no sessions in the last %d days and weekly volume %.0f is below %.0f%% of average",
					lookbackDays, vol, ranker.cfg.HighVolumeRatio*100,
				),
				Priority: Priority.High,
			})
		case freq <= 1:
			medium = append(medium, MuscleGroupSuggestion{
				MuscleGroup: muscleGroup,
				Reason:      fmt.Sprintf("only %d session(s) in the last %d days", freq, lookbackDays),
				Priority:    Priority.Medium,
			})
		case vol < ranker.cfg.MediumVolumeRatio*average:
			medium = append(medium, MuscleGroupSuggestion{
				MuscleGroup: muscleGroup,
				Reason: fmt.Sprintf(
					"weekly volume %.0f is below %.0f%% of average",
					vol, ranker.cfg.MediumVolumeRatio*100,
				),
				Priority: Priority.Medium,
			})
		default:
			pair := complementaryPairs[muscleGroup]
			if frequency[pair]-freq > ranker.cfg.PairFrequencyGap {
				low = append(low, MuscleGroupSuggestion{
					MuscleGroup: muscleGroup,
					Reason: fmt.Sprintf(
						"undertrained relative to %s (%d vs %d sessions)",
						pair, frequency[pair], freq,
					),
					Priority: Priority.Low,
				})
			}
		}
	}

	suggestions := make([]MuscleGroupSuggestion, 0, len(high)+len(medium)+len(low))
	suggestions = append(suggestions, high...)
	suggestions = append(suggestions, medium...)
	suggestions = append(suggestions, low...)
	if limit < len(suggestions) {
		suggestions = suggestions[:limit]
	}

	return suggestions, nil
}

// frequencyPerGroup counts, per muscle group, how many logged entries
// targeted it within the window. Muscle groups are resolved once per
// distinct exercise.
func (ranker *Ranker) frequencyPerGroup(
	ctx context.Context,
	entries []workout.Entry,
) (map[string]int, error) {
	groupsPerExercise := make(map[string][]string)
	frequency := make(map[string]int)
	for _, entry := range entries {
		muscleGroups, seen := groupsPerExercise[entry.ExerciseID]
		if !seen {
			var err error
			muscleGroups, err = ranker.resolver.MuscleGroupsFor(ctx, entry.ExerciseID)
			if err != nil {
				return nil, fmt.Errorf("resolve muscle groups for %s: %w", entry.ExerciseID, err)
			}
			groupsPerExercise[entry.ExerciseID] = muscleGroups
		}
		for _, muscleGroup := range muscleGroups {
			frequency[muscleGroup]++
		}
	}
	return frequency, nil
}
