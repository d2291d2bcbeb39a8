package workouts

import "time"

// Weekday runs Monday=0 .. Sunday=6, matching how workout schedules are
// presented to users. Postgres EXTRACT(DOW) counts Sunday=0 .. Saturday=6,
// PostgresDOW is the single place where the two numberings meet.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return weekdayNames[d]
}

// PostgresDOW returns the EXTRACT(DOW) value for this weekday.
func (d Weekday) PostgresDOW() int {
	return (int(d) + 1) % 7
}

func WeekdayFromTime(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// WorkoutLog is one workout session: created at session start, written
// once at completion. Statistics only count completed logs.
type WorkoutLog struct {
	ID              int           `json:"id"`
	UserID          int           `json:"userId"`
	PlanID          int           `json:"planId"`
	DayID           int           `json:"dayId"`
	LogDate         time.Time     `json:"logDate"`
	Completed       bool          `json:"completed"`
	DurationMinutes int           `json:"durationMinutes"`
	ExerciseLogs    []ExerciseLog `json:"exerciseLogs,omitempty"`
}

// ExerciseLog records the performed sets of one exercise within a session.
// Reps and Weights are aligned by set index, both may be absent.
type ExerciseLog struct {
	ID            int       `json:"id"`
	WorkoutLogID  int       `json:"workoutLogId"`
	ExerciseID    int       `json:"exerciseId"`
	ExerciseName  string    `json:"exerciseName,omitempty"`
	SetsCompleted int       `json:"setsCompleted"`
	Reps          []int     `json:"reps,omitempty"`
	Weights       []float64 `json:"weights,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	LogDate       time.Time `json:"logDate,omitempty"`
}

type ExerciseCount struct {
	ExerciseID int    `json:"exerciseId"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

type DayCount struct {
	DayID int `json:"dayId"`
	Count int `json:"count"`
}
