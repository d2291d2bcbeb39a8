package workouts

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
	ErrLogNotFound = errors.New("workout log not found")
	ErrDayNotFound = errors.New("workout day not found")
)

type ListParams struct {
	UserID     int
	From       *time.Time
	To         *time.Time
	Completed  *bool
	ExerciseID int
	Weekday    *Weekday
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// StartSession creates a workout log for the given day and today's date,
// together with one empty exercise log per planned exercise. Starting the
// same day twice on the same date returns the already existing log.
func (r *Repo) StartSession(ctx context.Context, userID, dayID int) (_ *WorkoutLog, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.startSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("day.id", dayID))

	var planID int
	err = r.db.QueryRow(ctx, `SELECT plan_id FROM workout_day WHERE id = $1;`, dayID).Scan(&planID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, ErrDayNotFound
	}
	if err != nil {
		return nil, false, err
	}

	today := dateOnly(time.Now())

	var existingID int
	err = r.db.QueryRow(
		ctx,
		`SELECT id FROM workout_log WHERE user_id = $1 AND day_id = $2 AND log_date = $3;`,
		userID, dayID, today,
	).Scan(&existingID)
	if err == nil {
		existing, err := r.Get(ctx, existingID)
		if err != nil {
			return nil, false, fmt.Errorf("get existing log %d: %w", existingID, err)
		}
		return existing, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	workoutLog := WorkoutLog{
		UserID:  userID,
		PlanID:  planID,
		DayID:   dayID,
		LogDate: today,
	}
	err = tx.QueryRow(
		ctx,
		`INSERT INTO workout_log (user_id, plan_id, day_id, log_date, completed, duration_minutes)
				VALUES ($1, $2, $3, $4, FALSE, 0)
			RETURNING id;`,
		userID, planID, dayID, today,
	).Scan(&workoutLog.ID)
	if err != nil {
		return nil, false, fmt.Errorf("insert workout log: %w", err)
	}

	_, err = tx.Exec(
		ctx,
		`INSERT INTO exercise_log (workout_log_id, exercise_id, sets_completed)
			SELECT $1, exercise_id, 0 FROM workout_exercise WHERE day_id = $2;`,
		workoutLog.ID, dayID,
	)
	if err != nil {
		return nil, false, fmt.Errorf("insert exercise logs: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("commit tx: %w", err)
	}

	span.SetAttributes(attribute.Int("log.id", workoutLog.ID))

	startedLog, err := r.Get(ctx, workoutLog.ID)
	if err != nil {
		return nil, false, fmt.Errorf("get started log %d: %w", workoutLog.ID, err)
	}
	return startedLog, true, nil
}

// CompleteSession writes the performed exercises into the session log and
// marks it completed. Last write wins on repeated completion submissions.
func (r *Repo) CompleteSession(ctx context.Context, logID, durationMinutes int, entries []ExerciseLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.completeSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("log.id", logID))
	span.SetAttributes(attribute.Int("entries", len(entries)))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	tag, err := tx.Exec(
		ctx,
		`UPDATE workout_log SET completed = TRUE, duration_minutes = $1 WHERE id = $2;`,
		durationMinutes, logID,
	)
	if err != nil {
		return fmt.Errorf("update workout log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}

	for _, entry := range entries {
		_, err = tx.Exec(
			ctx,
			`INSERT INTO exercise_log (workout_log_id, exercise_id, sets_completed, reps, weights, notes)
					VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (workout_log_id, exercise_id) DO UPDATE SET
					sets_completed = EXCLUDED.sets_completed,
					reps = EXCLUDED.reps,
					weights = EXCLUDED.weights,
					notes = EXCLUDED.notes;`,
			logID, entry.ExerciseID, entry.SetsCompleted, entry.Reps, entry.Weights, entry.Notes,
		)
		if err != nil {
			return fmt.Errorf("upsert exercise log for exercise %d: %w", entry.ExerciseID, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *Repo) Get(ctx context.Context, id int) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var workoutLog WorkoutLog
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, plan_id, day_id, log_date, completed, duration_minutes
			FROM workout_log WHERE id = $1;`,
		id,
	).Scan(
		&workoutLog.ID, &workoutLog.UserID, &workoutLog.PlanID, &workoutLog.DayID,
		&workoutLog.LogDate, &workoutLog.Completed, &workoutLog.DurationMinutes,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrLogNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT el.id, el.workout_log_id, el.exercise_id, e.name, el.sets_completed, el.reps, el.weights, el.notes
			FROM exercise_log el
			JOIN exercise e ON el.exercise_id = e.id
			WHERE el.workout_log_id = $1
			ORDER BY el.id;`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercise logs: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise log rows: %w", err)
	}

	for rows.Next() {
		var el ExerciseLog
		var notes *string
		if err := rows.Scan(
			&el.ID, &el.WorkoutLogID, &el.ExerciseID, &el.ExerciseName,
			&el.SetsCompleted, &el.Reps, &el.Weights, &notes,
		); err != nil {
			return nil, err
		}
		if notes != nil {
			el.Notes = *notes
		}
		el.LogDate = workoutLog.LogDate
		workoutLog.ExerciseLogs = append(workoutLog.ExerciseLogs, el)
	}

	return &workoutLog, nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", params.UserID))

	var weekdayDOW *int
	if params.Weekday != nil {
		dow := params.Weekday.PostgresDOW()
		weekdayDOW = &dow
		span.SetAttributes(attribute.String("weekday", params.Weekday.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT wl.id, wl.user_id, wl.plan_id, wl.day_id, wl.log_date, wl.completed, wl.duration_minutes
			FROM workout_log wl
			LEFT JOIN exercise_log el ON el.workout_log_id = wl.id
			WHERE wl.user_id = $1
			AND ($2::date IS NULL OR wl.log_date >= $2)
			AND ($3::date IS NULL OR wl.log_date <= $3)
			AND ($4::boolean IS NULL OR wl.completed = $4)
			AND ($5::int = 0 OR el.exercise_id = $5)
			AND ($6::int IS NULL OR EXTRACT(DOW FROM wl.log_date) = $6)
			ORDER BY wl.log_date DESC, wl.id DESC;`,
		params.UserID, params.From, params.To, params.Completed, params.ExerciseID, weekdayDOW,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	logs := make([]WorkoutLog, 0)
	for rows.Next() {
		var wl WorkoutLog
		if err := rows.Scan(
			&wl.ID, &wl.UserID, &wl.PlanID, &wl.DayID,
			&wl.LogDate, &wl.Completed, &wl.DurationMinutes,
		); err != nil {
			return nil, err
		}
		logs = append(logs, wl)
	}

	return logs, nil
}

// RecentCompleted returns the most recently completed sessions, newest first.
func (r *Repo) RecentCompleted(ctx context.Context, userID, limit int) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.recentCompleted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, plan_id, day_id, log_date, completed, duration_minutes
			FROM workout_log
			WHERE user_id = $1 AND completed
			ORDER BY log_date DESC, id DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	logs := make([]WorkoutLog, 0)
	for rows.Next() {
		var wl WorkoutLog
		if err := rows.Scan(
			&wl.ID, &wl.UserID, &wl.PlanID, &wl.DayID,
			&wl.LogDate, &wl.Completed, &wl.DurationMinutes,
		); err != nil {
			return nil, err
		}
		logs = append(logs, wl)
	}

	return logs, nil
}

// CompletedDates returns the distinct dates of completed sessions, newest first.
func (r *Repo) CompletedDates(ctx context.Context, userID int) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.completedDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT log_date FROM workout_log
			WHERE user_id = $1 AND completed
			ORDER BY log_date DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	dates := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	return dates, nil
}

// TopExercises returns the most logged exercises of the user within the
// given period, by occurrence in completed sessions.
func (r *Repo) TopExercises(ctx context.Context, userID int, from, to time.Time, limit int) (_ []ExerciseCount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.topExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT e.id, e.name, COUNT(*) AS cnt
			FROM exercise_log el
			JOIN workout_log wl ON el.workout_log_id = wl.id
			JOIN exercise e ON el.exercise_id = e.id
			WHERE wl.user_id = $1 AND wl.completed
			AND wl.log_date >= $2 AND wl.log_date <= $3
			AND el.sets_completed > 0
			GROUP BY e.id, e.name
			ORDER BY cnt DESC, e.name
			LIMIT $4;`,
		userID, dateOnly(from), dateOnly(to), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	counts := make([]ExerciseCount, 0)
	for rows.Next() {
		var ec ExerciseCount
		if err := rows.Scan(&ec.ExerciseID, &ec.Name, &ec.Count); err != nil {
			return nil, err
		}
		counts = append(counts, ec)
	}

	return counts, nil
}

// CompletedByWeekday returns, per workout day, how many completed sessions
// the user logged on the given weekday, most frequent first.
func (r *Repo) CompletedByWeekday(ctx context.Context, userID int, weekday Weekday) (_ []DayCount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.completedByWeekday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.String("weekday", weekday.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT day_id, COUNT(*) AS cnt
			FROM workout_log
			WHERE user_id = $1 AND completed
			AND EXTRACT(DOW FROM log_date) = $2
			GROUP BY day_id
			ORDER BY cnt DESC, day_id;`,
		userID, weekday.PostgresDOW(),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	counts := make([]DayCount, 0)
	for rows.Next() {
		var dc DayCount
		if err := rows.Scan(&dc.DayID, &dc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, dc)
	}

	return counts, nil
}

// ExerciseHistory returns the exercise logs of one exercise across the
// user's completed sessions in the period, oldest first.
func (r *Repo) ExerciseHistory(ctx context.Context, userID, exerciseID int, from, to time.Time) (_ []ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exerciseHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	rows, err := r.db.Query(
		ctx,
		`SELECT el.id, el.workout_log_id, el.exercise_id, e.name, el.sets_completed, el.reps, el.weights, el.notes, wl.log_date
			FROM exercise_log el
			JOIN workout_log wl ON el.workout_log_id = wl.id
			JOIN exercise e ON el.exercise_id = e.id
			WHERE wl.user_id = $1 AND el.exercise_id = $2 AND wl.completed
			AND wl.log_date >= $3 AND wl.log_date <= $4
			ORDER BY wl.log_date, el.id;`,
		userID, exerciseID, dateOnly(from), dateOnly(to),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	history := make([]ExerciseLog, 0)
	for rows.Next() {
		var el ExerciseLog
		var notes *string
		if err := rows.Scan(
			&el.ID, &el.WorkoutLogID, &el.ExerciseID, &el.ExerciseName,
			&el.SetsCompleted, &el.Reps, &el.Weights, &notes, &el.LogDate,
		); err != nil {
			return nil, err
		}
		if notes != nil {
			el.Notes = *notes
		}
		history = append(history, el)
	}

	return history, nil
}

// LogOwner returns the ID of the user the workout log belongs to.
func (r *Repo) LogOwner(ctx context.Context, logID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.logOwner")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var userID int
	err = r.db.QueryRow(ctx, `SELECT user_id FROM workout_log WHERE id = $1;`, logID).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrLogNotFound
	}
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// DeleteAbandoned removes never-completed session logs older than the
// given date. Used by the housekeeping cron job.
func (r *Repo) DeleteAbandoned(ctx context.Context, before time.Time) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteAbandoned")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workout_log WHERE completed = FALSE AND log_date < $1;`,
		dateOnly(before),
	)
	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int("deleted", int(tag.RowsAffected())))
	return tag.RowsAffected(), nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
