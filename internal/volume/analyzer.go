package volume

import (
	"context"
	"sort"
	"time"

	"github.com/dstanisic/liftcoach/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=volume_test

type weekRowsReader interface {
	WeekRows(ctx context.Context, userID string, weekStart time.Time) ([]WeeklyVolumeRow, error)
}

// Analyzer flags muscle groups whose weekly volume falls well below the
// user's average across the groups trained that week. Only rows that exist
// are examined, a muscle group with no row at all is not flagged here.
type Analyzer struct {
	repo      weekRowsReader
	threshold float64
}

func NewAnalyzer(repo weekRowsReader, threshold float64) *Analyzer {
	return &Analyzer{
		repo:      repo,
		threshold: threshold,
	}
}

func (a *Analyzer) CheckBalance(ctx context.Context, userID string, weekStart time.Time) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "volume.analyzer.checkBalance")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("userId", userID))

	rows, err := a.repo.WeekRows(ctx, userID, WeekStartUTC(weekStart))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []string{}, nil
	}

	var total float64
	for _, row := range rows {
		total += row.Volume
	}
	average := total / float64(len(rows))

	flagged := []string{}
	for _, row := range rows {
		if row.Volume < a.threshold*average {
			flagged = append(flagged, row.MuscleGroup)
		}
	}
	sort.Strings(flagged)

	return flagged, nil
}
