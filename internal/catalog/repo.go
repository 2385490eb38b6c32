package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/dstanisic/liftcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

func (r *Repo) Add(ctx context.Context, exerciseType ExerciseType) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exerciseType.id", exerciseType.ID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO exercise_type
				(id, name, muscle_groups, description, created_at)
			VALUES ($1, $2, $3, $4, $5);`,
		exerciseType.ID, exerciseType.Name, exerciseType.MuscleGroups,
		exerciseType.Description, exerciseType.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrExerciseTypeExists
		}
		return fmt.Errorf("add exercise type: %w", err)
	}

	return nil
}

func (r *Repo) Get(ctx context.Context, exerciseTypeID string) (_ ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exerciseType.id", exerciseTypeID))

	var exerciseType ExerciseType
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
			    id, name, muscle_groups, description, created_at
			FROM exercise_type
			WHERE id = $1
		`,
		exerciseTypeID,
	).Scan(
		&exerciseType.ID,
		&exerciseType.Name,
		&exerciseType.MuscleGroups,
		&exerciseType.Description,
		&exerciseType.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ExerciseType{}, ErrExerciseTypeNotFound
		}
		return ExerciseType{}, fmt.Errorf("exercise type [query row]: %w", err)
	}

	return exerciseType, nil
}

func (r *Repo) List(ctx context.Context) (_ []ExerciseType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
			    id, name, muscle_groups, description, created_at
			FROM exercise_type
			ORDER BY id
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise types [query]: %w", err)
	}
	defer rows.Close()

	var exerciseTypes []ExerciseType
	for rows.Next() {
		var exerciseType ExerciseType
		err := rows.Scan(
			&exerciseType.ID,
			&exerciseType.Name,
			&exerciseType.MuscleGroups,
			&exerciseType.Description,
			&exerciseType.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("exercise types [rows scan]: %w", err)
		}
		exerciseTypes = append(exerciseTypes, exerciseType)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise types [rows error]: %w", err)
	}

	return exerciseTypes, nil
}

func (r *Repo) Update(ctx context.Context, exerciseType ExerciseType) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exerciseType.id", exerciseType.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE exercise_type
			SET name = $1, muscle_groups = $2, description = $3
			WHERE id = $4;`,
		exerciseType.Name, exerciseType.MuscleGroups, exerciseType.Description, exerciseType.ID,
	)
	if err != nil {
		return fmt.Errorf("update exercise type: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrExerciseTypeNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, exerciseTypeID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exerciseType.id", exerciseTypeID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercise_type WHERE id = $1`,
		exerciseTypeID,
	)
	if err != nil {
		return fmt.Errorf("delete exercise type: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrExerciseTypeNotFound
	}

	return nil
}
