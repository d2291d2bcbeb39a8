package plans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/homefit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrPlanNotFound            = errors.New("workout plan not found")
	ErrDayNotFound             = errors.New("workout day not found")
	ErrWorkoutExerciseNotFound = errors.New("workout exercise not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddPlan(ctx context.Context, plan WorkoutPlan) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.addPlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	plan.CreatedAt = time.Now()
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_plan (user_id, name, description, created_at)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		plan.UserID, plan.Name, plan.Description, plan.CreatedAt,
	).Scan(&plan.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("plan.id", plan.ID))
	return &plan, nil
}

// GetPlan returns the plan with its days and their exercises loaded.
func (r *Repo) GetPlan(ctx context.Context, id int) (_ *WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.getPlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var plan WorkoutPlan
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, name, description, created_at FROM workout_plan WHERE id = $1;`,
		id,
	).Scan(&plan.ID, &plan.UserID, &plan.Name, &plan.Description, &plan.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	days, err := r.listPlanDays(ctx, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("list plan days: %w", err)
	}
	plan.Days = days

	return &plan, nil
}

func (r *Repo) ListPlans(ctx context.Context, userID int) (_ []WorkoutPlan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.listPlans")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, description, created_at
			FROM workout_plan WHERE user_id = $1 ORDER BY created_at, id;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	plans := make([]WorkoutPlan, 0)
	for rows.Next() {
		var p WorkoutPlan
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}

	return plans, nil
}

func (r *Repo) UpdatePlan(ctx context.Context, plan *WorkoutPlan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.updatePlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", plan.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_plan SET name = $1, description = $2 WHERE id = $3;`,
		plan.Name, plan.Description, plan.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *Repo) DeletePlan(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.deletePlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_plan WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// PlanOwner returns the ID of the user owning the given plan.
func (r *Repo) PlanOwner(ctx context.Context, planID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.planOwner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var userID int
	err = r.db.QueryRow(ctx, `SELECT user_id FROM workout_plan WHERE id = $1;`, planID).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrPlanNotFound
	}
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (r *Repo) AddDay(ctx context.Context, planID int, dayName string) (_ *WorkoutDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.addDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	day := WorkoutDay{
		PlanID:  planID,
		DayName: dayName,
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_day (plan_id, day_name) VALUES ($1, $2) RETURNING id;`,
		planID, dayName,
	).Scan(&day.ID)
	if err != nil {
		return nil, err
	}

	return &day, nil
}

func (r *Repo) GetDay(ctx context.Context, dayID int) (_ *WorkoutDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.getDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day.id", dayID))

	var day WorkoutDay
	err = r.db.QueryRow(
		ctx,
		`SELECT id, plan_id, day_name FROM workout_day WHERE id = $1;`,
		dayID,
	).Scan(&day.ID, &day.PlanID, &day.DayName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, err
	}

	exercises, err := r.ListDayExercises(ctx, day.ID)
	if err != nil {
		return nil, fmt.Errorf("list day exercises: %w", err)
	}
	day.Exercises = exercises

	return &day, nil
}

func (r *Repo) DeleteDay(ctx context.Context, dayID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.deleteDay")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day.id", dayID))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_day WHERE id = $1;`, dayID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDayNotFound
	}
	return nil
}

// DayOwner returns the ID of the user owning the plan the day belongs to.
func (r *Repo) DayOwner(ctx context.Context, dayID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.dayOwner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var userID int
	err = r.db.QueryRow(
		ctx,
		`SELECT p.user_id
			FROM workout_day d
			JOIN workout_plan p ON d.plan_id = p.id
			WHERE d.id = $1;`,
		dayID,
	).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrDayNotFound
	}
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// ListDaysForUser returns all workout days of all plans of the user,
// ordered by plan creation, then by day ID.
func (r *Repo) ListDaysForUser(ctx context.Context, userID int) (_ []WorkoutDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.listDaysForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT d.id, d.plan_id, d.day_name
			FROM workout_day d
			JOIN workout_plan p ON d.plan_id = p.id
			WHERE p.user_id = $1
			ORDER BY p.created_at, p.id, d.id;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	days := make([]WorkoutDay, 0)
	for rows.Next() {
		var d WorkoutDay
		if err := rows.Scan(&d.ID, &d.PlanID, &d.DayName); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, nil
}

func (r *Repo) AddWorkoutExercise(ctx context.Context, we WorkoutExercise) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.addWorkoutExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day.id", we.DayID))
	span.SetAttributes(attribute.Int("exercise.id", we.ExerciseID))

	// new exercises go to the end of the day
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_exercise (day_id, exercise_id, sets, reps, rest_seconds, position)
				VALUES ($1, $2, $3, $4, $5,
					(SELECT COALESCE(MAX(position), 0) + 1 FROM workout_exercise WHERE day_id = $1))
			RETURNING id, position;`,
		we.DayID, we.ExerciseID, we.Sets, we.Reps, we.RestSeconds,
	).Scan(&we.ID, &we.Position)
	if err != nil {
		return nil, err
	}

	return &we, nil
}

func (r *Repo) ListDayExercises(ctx context.Context, dayID int) (_ []WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.listDayExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day.id", dayID))

	rows, err := r.db.Query(
		ctx,
		`SELECT we.id, we.day_id, we.exercise_id, e.name, we.sets, we.reps, we.rest_seconds, we.position
			FROM workout_exercise we
			JOIN exercise e ON we.exercise_id = e.id
			WHERE we.day_id = $1
			ORDER BY we.position, we.id;`,
		dayID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	exercises := make([]WorkoutExercise, 0)
	for rows.Next() {
		var we WorkoutExercise
		if err := rows.Scan(
			&we.ID, &we.DayID, &we.ExerciseID, &we.ExerciseName,
			&we.Sets, &we.Reps, &we.RestSeconds, &we.Position,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, we)
	}

	return exercises, nil
}

func (r *Repo) DeleteWorkoutExercise(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.deleteWorkoutExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_exercise WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutExerciseNotFound
	}
	return nil
}

// ReorderDayExercises rewrites positions of the day exercises
// according to the given ordered ID list.
func (r *Repo) ReorderDayExercises(ctx context.Context, dayID int, orderedIDs []int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.reorderDayExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("day.id", dayID))
	span.SetAttributes(attribute.Int("exercises", len(orderedIDs)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	for position, id := range orderedIDs {
		tag, err := tx.Exec(
			ctx,
			`UPDATE workout_exercise SET position = $1 WHERE id = $2 AND day_id = $3;`,
			position+1, id, dayID,
		)
		if err != nil {
			return fmt.Errorf("update position of %d: %w", id, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: %d", ErrWorkoutExerciseNotFound, id)
		}
	}

	return tx.Commit(ctx)
}

// WorkoutExerciseOwner returns the ID of the user owning the plan
// the workout exercise belongs to.
func (r *Repo) WorkoutExerciseOwner(ctx context.Context, id int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.workoutExerciseOwner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var userID int
	err = r.db.QueryRow(
		ctx,
		`SELECT p.user_id
			FROM workout_exercise we
			JOIN workout_day d ON we.day_id = d.id
			JOIN workout_plan p ON d.plan_id = p.id
			WHERE we.id = $1;`,
		id,
	).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrWorkoutExerciseNotFound
	}
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (r *Repo) listPlanDays(ctx context.Context, planID int) ([]WorkoutDay, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, plan_id, day_name FROM workout_day WHERE plan_id = $1 ORDER BY id;`,
		planID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	days := make([]WorkoutDay, 0)
	for rows.Next() {
		var d WorkoutDay
		if err := rows.Scan(&d.ID, &d.PlanID, &d.DayName); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	for i := range days {
		exercises, err := r.ListDayExercises(ctx, days[i].ID)
		if err != nil {
			return nil, err
		}
		days[i].Exercises = exercises
	}

	return days, nil
}
