package progression

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

type RulesRepo struct {
	db *pgxpool.Pool
}

func NewRulesRepo(db *pgxpool.Pool) *RulesRepo {
	return &RulesRepo{
		db: db,
	}
}

func (r *RulesRepo) CreateRule(ctx context.Context, rule Rule) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.rules.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("rule.exerciseId", rule.ExerciseID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO progression_rule
				(exercise_id, increment, deload_threshold, target_sessions, created_at)
			VALUES ($1, $2, $3, $4, $5);`,
		rule.ExerciseID, rule.Increment, rule.DeloadThreshold, rule.TargetSessions, rule.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrRuleExists
		}
		return fmt.Errorf("create progression rule: %w", err)
	}

	return nil
}

func (r *RulesRepo) GetRule(ctx context.Context, exerciseID string) (_ Rule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.rules.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("rule.exerciseId", exerciseID))

	var rule Rule
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
			    exercise_id, increment, deload_threshold, target_sessions, created_at
			FROM progression_rule
			WHERE exercise_id = $1
		`,
		exerciseID,
	).Scan(
		&rule.ExerciseID,
		&rule.Increment,
		&rule.DeloadThreshold,
		&rule.TargetSessions,
		&rule.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Rule{}, ErrRuleNotFound
		}
		return Rule{}, fmt.Errorf("progression rule [query row]: %w", err)
	}

	return rule, nil
}

func (r *RulesRepo) UpdateRule(ctx context.Context, exerciseID string, update RuleUpdate) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.rules.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("rule.exerciseId", exerciseID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE progression_rule
			SET
				increment = COALESCE($1, increment),
				deload_threshold = COALESCE($2, deload_threshold),
				target_sessions = COALESCE($3, target_sessions)
			WHERE exercise_id = $4;`,
		update.Increment, update.DeloadThreshold, update.TargetSessions, exerciseID,
	)
	if err != nil {
		return fmt.Errorf("update progression rule: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrRuleNotFound
	}

	return nil
}

func (r *RulesRepo) DeleteRule(ctx context.Context, exerciseID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progression.rules.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("rule.exerciseId", exerciseID))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM progression_rule WHERE exercise_id = $1`,
		exerciseID,
	)
	if err != nil {
		return fmt.Errorf("delete progression rule: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrRuleNotFound
	}

	return nil
}
