package stats

import (
	"context"
	"time"

	"github.com/2beens/homefit/internal/plans"
	"github.com/2beens/homefit/internal/workouts"
)

//go:generate mockgen -source=repos.go -destination=stats_mocks_test.go -package=stats_test

// logsRepo is the slice of the workout logs store the statistics need.
type logsRepo interface {
	CompletedDates(ctx context.Context, userID int) ([]time.Time, error)
	List(ctx context.Context, params workouts.ListParams) ([]workouts.WorkoutLog, error)
	TopExercises(ctx context.Context, userID int, from, to time.Time, limit int) ([]workouts.ExerciseCount, error)
	RecentCompleted(ctx context.Context, userID, limit int) ([]workouts.WorkoutLog, error)
	CompletedByWeekday(ctx context.Context, userID int, weekday workouts.Weekday) ([]workouts.DayCount, error)
	ExerciseHistory(ctx context.Context, userID, exerciseID int, from, to time.Time) ([]workouts.ExerciseLog, error)
}

type plansRepo interface {
	ListDaysForUser(ctx context.Context, userID int) ([]plans.WorkoutDay, error)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
