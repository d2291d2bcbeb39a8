package plans

import "time"

type WorkoutPlan struct {
	ID          int          `json:"id"`
	UserID      int          `json:"userId"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	Days        []WorkoutDay `json:"days,omitempty"`
}

type WorkoutDay struct {
	ID        int               `json:"id"`
	PlanID    int               `json:"planId"`
	DayName   string            `json:"dayName"`
	Exercises []WorkoutExercise `json:"exercises,omitempty"`
}

// WorkoutExercise is one catalog exercise scheduled within a workout day,
// with the planned sets/reps and the user-controlled ordering position.
type WorkoutExercise struct {
	ID           int    `json:"id"`
	DayID        int    `json:"dayId"`
	ExerciseID   int    `json:"exerciseId"`
	ExerciseName string `json:"exerciseName,omitempty"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
	RestSeconds  int    `json:"restSeconds"`
	Position     int    `json:"position"`
}
