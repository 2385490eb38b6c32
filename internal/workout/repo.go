package workout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dstanisic/liftcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db  *pgxpool.Pool
	now func() time.Time
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db:  db,
		now: time.Now,
	}
}

func (r *Repo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_entry
				(user_id, exercise_id, sets, reps, weight, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		entry.UserID, entry.ExerciseID, entry.Sets, entry.Reps, entry.Weight, entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("entry.id", id))

	entry.ID = id
	return &entry, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_entry WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// RecentEntries returns the user's entries logged within the last
// lookbackDays days, newest first.
func (r *Repo) RecentEntries(ctx context.Context, userID string, lookbackDays int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.recentEntries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("userId", userID),
		attribute.Int("lookbackDays", lookbackDays),
	)

	since := r.now().AddDate(0, 0, -lookbackDays)

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, user_id, exercise_id, sets, reps, weight, created_at
			FROM workout_entry
			WHERE user_id = $1 AND created_at >= $2
			ORDER BY created_at DESC
		`,
		userID, since,
	)
	if err != nil {
		return nil, fmt.Errorf("workout entries [query]: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.ExerciseID,
			&entry.Sets,
			&entry.Reps,
			&entry.Weight,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("workout entries [rows scan]: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout entries [rows error]: %w", err)
	}

	return entries, nil
}
