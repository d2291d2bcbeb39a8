package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/homefit/internal/plans"
	"github.com/2beens/homefit/internal/telemetry/tracing"
	"github.com/2beens/homefit/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

const recentWindowSize = 5

type Suggestion struct {
	Day    plans.WorkoutDay `json:"workoutDay"`
	Reason string           `json:"reason"`
}

type Suggester struct {
	logs  logsRepo
	plans plansRepo
	now   func() time.Time
}

func NewSuggester(logs logsRepo, plansRepo plansRepo) *Suggester {
	return &Suggester{
		logs:  logs,
		plans: plansRepo,
		now:   time.Now,
	}
}

// Suggest picks the workout day the user should do next. Days completed
// within the recent window are skipped; when every day was done recently,
// the least recently completed one is suggested. A user without any plan
// days gets no suggestion.
func (s *Suggester) Suggest(ctx context.Context, userID int) (_ *Suggestion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.suggester.suggest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	days, err := s.plans.ListDaysForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	if len(days) == 0 {
		return nil, nil
	}

	daysByID := make(map[int]plans.WorkoutDay, len(days))
	for _, day := range days {
		daysByID[day.ID] = day
	}

	recent, err := s.logs.RecentCompleted(ctx, userID, recentWindowSize)
	if err != nil {
		return nil, fmt.Errorf("recent completed: %w", err)
	}

	recentDayIDs := make(map[int]bool, len(recent))
	for _, workoutLog := range recent {
		recentDayIDs[workoutLog.DayID] = true
	}

	available := make([]plans.WorkoutDay, 0, len(days))
	for _, day := range days {
		if !recentDayIDs[day.ID] {
			available = append(available, day)
		}
	}

	if len(available) == 0 {
		// everything was done recently, fall back to the oldest of the window
		leastRecent := recent[len(recent)-1]
		day, ok := daysByID[leastRecent.DayID]
		if !ok {
			return nil, nil
		}
		return &Suggestion{
			Day:    day,
			Reason: "All workouts completed recently. This is the least recent one.",
		}, nil
	}

	// prefer the day the user habitually does on today's weekday
	todayWeekday := workouts.WeekdayFromTime(s.now())
	weekdayCounts, err := s.logs.CompletedByWeekday(ctx, userID, todayWeekday)
	if err != nil {
		return nil, fmt.Errorf("completed by weekday: %w", err)
	}
	if len(weekdayCounts) > 0 {
		habitualDayID := weekdayCounts[0].DayID
		if day, ok := daysByID[habitualDayID]; ok && !recentDayIDs[habitualDayID] {
			return &Suggestion{
				Day:    day,
				Reason: fmt.Sprintf("You often do this workout on %s.", todayWeekday),
			}, nil
		}
	}

	return &Suggestion{
		Day:    available[0],
		Reason: "You haven't done this workout recently.",
	}, nil
}
