package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/2beens/homefit/internal/telemetry/tracing"
	"github.com/2beens/homefit/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

// UserStats aggregates the completed sessions of one user over a period.
type UserStats struct {
	PeriodDays           int                      `json:"periodDays"`
	TotalWorkouts        int                      `json:"totalWorkouts"`
	TotalDurationMinutes int                      `json:"totalDurationMinutes"`
	AvgDurationMinutes   float64                  `json:"avgDurationMinutes"`
	CurrentStreak        int                      `json:"currentStreak"`
	FavoriteExercises    []workouts.ExerciseCount `json:"favoriteExercises"`
	MostActiveDay        string                   `json:"mostActiveDay,omitempty"`
	WeeklyFrequency      float64                  `json:"weeklyFrequency"`
}

type Analyzer struct {
	logs logsRepo
	// injectable clock, streaks anchor on "today"
	now func() time.Time
}

func NewAnalyzer(logs logsRepo) *Analyzer {
	return &Analyzer{
		logs: logs,
		now:  time.Now,
	}
}

// Streak returns the number of consecutive calendar days, ending today or
// yesterday, on which the user completed at least one workout. Several
// sessions on the same date count once. A session today and one two days
// ago gives a streak of 1, the gap terminates the count.
func (a *Analyzer) Streak(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.analyzer.streak")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	dates, err := a.logs.CompletedDates(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("completed dates: %w", err)
	}
	if len(dates) == 0 {
		return 0, nil
	}

	today := dateOnly(a.now())
	yesterday := today.AddDate(0, 0, -1)

	// the streak is alive only when anchored on today or yesterday
	latest := dateOnly(dates[0])
	var expected time.Time
	switch {
	case latest.Equal(today):
		expected = today
	case latest.Equal(yesterday):
		expected = yesterday
	default:
		return 0, nil
	}

	streak := 0
	for _, d := range dates {
		d = dateOnly(d)
		switch {
		case d.Equal(expected):
			streak++
			expected = expected.AddDate(0, 0, -1)
		case d.After(expected):
			// repeated date, already counted
			continue
		default:
			// gap of two or more days
			return streak, nil
		}
	}

	return streak, nil
}

// UserStats computes the aggregate stats over the trailing `days` days.
func (a *Analyzer) UserStats(ctx context.Context, userID, days int) (_ *UserStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.analyzer.userStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("days", days))

	today := dateOnly(a.now())
	from := today.AddDate(0, 0, -days)
	completed := true

	logs, err := a.logs.List(ctx, workouts.ListParams{
		UserID:    userID,
		From:      &from,
		To:        &today,
		Completed: &completed,
	})
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}

	userStats := &UserStats{
		PeriodDays:        days,
		TotalWorkouts:     len(logs),
		FavoriteExercises: make([]workouts.ExerciseCount, 0),
	}

	for _, workoutLog := range logs {
		userStats.TotalDurationMinutes += workoutLog.DurationMinutes
	}

	if len(logs) > 0 {
		userStats.AvgDurationMinutes = round1(float64(userStats.TotalDurationMinutes) / float64(len(logs)))
		userStats.WeeklyFrequency = round1(float64(len(logs)) / float64(days) * 7)
		userStats.MostActiveDay = mostActiveWeekday(logs).String()
	}

	streak, err := a.Streak(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("streak: %w", err)
	}
	userStats.CurrentStreak = streak

	topExercises, err := a.logs.TopExercises(ctx, userID, from, today, 5)
	if err != nil {
		return nil, fmt.Errorf("top exercises: %w", err)
	}
	userStats.FavoriteExercises = topExercises

	return userStats, nil
}

// mostActiveWeekday returns the weekday with the most completed sessions,
// earlier weekday wins a tie.
func mostActiveWeekday(logs []workouts.WorkoutLog) workouts.Weekday {
	var counts [7]int
	for _, workoutLog := range logs {
		counts[workouts.WeekdayFromTime(workoutLog.LogDate)]++
	}

	best := workouts.Monday
	for d := workouts.Monday; d <= workouts.Sunday; d++ {
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
