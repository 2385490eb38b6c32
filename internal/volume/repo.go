package volume

import (
	"context"
	"fmt"
	"time"

	"github.com/dstanisic/liftcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Increment adds delta to the (user, muscle group, week) row, creating it
// at zero first if absent. The whole operation is a single statement, so
// concurrent increments to the same key never lose updates.
func (r *Repo) Increment(ctx context.Context, userID, muscleGroup string, weekStart time.Time, delta float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.volume.increment")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("userId", userID),
		attribute.String("muscleGroup", muscleGroup),
		attribute.Float64("delta", delta),
	)

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO weekly_volume (user_id, muscle_group, week_start, volume)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, muscle_group, week_start)
			DO UPDATE SET volume = weekly_volume.volume + EXCLUDED.volume;`,
		userID, muscleGroup, weekStart, delta,
	)
	if err != nil {
		return fmt.Errorf("increment weekly volume: %w", err)
	}

	return nil
}

func (r *Repo) WeekRows(ctx context.Context, userID string, weekStart time.Time) (_ []WeeklyVolumeRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.volume.weekRows")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("userId", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    user_id, muscle_group, week_start, volume
			FROM weekly_volume
			WHERE user_id = $1 AND week_start = $2
			ORDER BY muscle_group
		`,
		userID, weekStart,
	)
	if err != nil {
		return nil, fmt.Errorf("weekly volume [query]: %w", err)
	}
	defer rows.Close()

	var volumeRows []WeeklyVolumeRow
	for rows.Next() {
		var row WeeklyVolumeRow
		err := rows.Scan(
			&row.UserID,
			&row.MuscleGroup,
			&row.WeekStart,
			&row.Volume,
		)
		if err != nil {
			return nil, fmt.Errorf("weekly volume [rows scan]: %w", err)
		}
		volumeRows = append(volumeRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("weekly volume [rows error]: %w", err)
	}

	return volumeRows, nil
}
