package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/2beens/homefit/internal/db"
	"github.com/2beens/homefit/internal/exercises"
	"github.com/2beens/homefit/internal/plans"
	"github.com/2beens/homefit/internal/users"
	"github.com/2beens/homefit/pkg"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Seeds a local database with a demo user, a small exercise catalog,
// one plan with three days, and a few weeks of completed session logs.
// Meant for local development only.

var catalogSeed = []exercises.Exercise{
	{Name: "Bench Press", Description: "Barbell flat bench press"},
	{Name: "Squat", Description: "Barbell back squat"},
	{Name: "Deadlift", Description: "Conventional deadlift"},
	{Name: "Overhead Press", Description: "Standing barbell press"},
	{Name: "Barbell Row", Description: "Bent over barbell row"},
	{Name: "Pull Up", Description: "Bodyweight pull up"},
	{Name: "Leg Press", Description: "Machine leg press"},
	{Name: "Plank", Description: "Core hold"},
}

func main() {
	dbHost := flag.String("db-host", "localhost", "postgres host")
	dbPort := flag.String("db-port", "5432", "postgres port")
	dbName := flag.String("db-name", "homefit", "postgres database name")
	username := flag.String("username", "demo", "demo user username")
	password := flag.String("password", "demo-pass", "demo user password")
	weeks := flag.Int("weeks", 4, "weeks of workout history to generate")
	flag.Parse()

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: *dbHost,
		DBPort: *dbPort,
		DBName: *dbName,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	if err := seed(ctx, dbPool, *username, *password, *weeks); err != nil {
		log.Fatalf("seed: %s", err)
	}

	log.Printf("done, login with %s / %s", *username, *password)
}

func seed(ctx context.Context, dbPool *pgxpool.Pool, username, password string, weeks int) error {
	usersRepo := users.NewRepo(dbPool)

	passwordHash, err := pkg.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user, err := usersRepo.Add(ctx, username, passwordHash)
	if err != nil {
		return fmt.Errorf("add user %s: %w", username, err)
	}
	log.Printf("user %s created, id %d", user.Username, user.ID)

	height := 165 + rand.Float64()*30
	weight := 55 + rand.Float64()*40
	if err := usersRepo.UpdateProfile(ctx, &users.Profile{
		UserID:         user.ID,
		HeightCm:       &height,
		WeightKg:       &weight,
		FitnessGoal:    gofakeit.RandomString([]string{"lose weight", "build muscle", "stay fit"}),
		PreferredTheme: "dark",
	}); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	catalogRepo := exercises.NewRepo(dbPool)
	var catalog []exercises.Exercise
	for _, e := range catalogSeed {
		added, err := catalogRepo.Add(ctx, e)
		if err != nil {
			return fmt.Errorf("add exercise %s: %w", e.Name, err)
		}
		catalog = append(catalog, *added)
	}
	log.Printf("%d catalog exercises created", len(catalog))

	plansRepo := plans.NewRepo(dbPool)
	plan, err := plansRepo.AddPlan(ctx, plans.WorkoutPlan{
		UserID:      user.ID,
		Name:        fmt.Sprintf("%s Split", gofakeit.AdjectiveDescriptive()),
		Description: gofakeit.Sentence(8),
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return fmt.Errorf("add plan: %w", err)
	}

	dayNames := []string{"Push Day", "Pull Day", "Leg Day"}
	var days []plans.WorkoutDay
	for d, dayName := range dayNames {
		day, err := plansRepo.AddDay(ctx, plan.ID, dayName)
		if err != nil {
			return fmt.Errorf("add day %s: %w", dayName, err)
		}
		for pos := 0; pos < 3; pos++ {
			ex := catalog[(d*3+pos)%len(catalog)]
			if _, err := plansRepo.AddWorkoutExercise(ctx, plans.WorkoutExercise{
				DayID:       day.ID,
				ExerciseID:  ex.ID,
				Sets:        3,
				Reps:        8 + rand.Intn(5),
				RestSeconds: 90,
				Position:    pos + 1,
			}); err != nil {
				return fmt.Errorf("add workout exercise: %w", err)
			}
		}
		days = append(days, *day)
	}
	log.Printf("plan %q created with %d days", plan.Name, len(days))

	return seedHistory(ctx, dbPool, user.ID, plan.ID, days, catalog, weeks)
}

// seedHistory writes completed logs directly, the repo API only starts
// sessions dated today.
func seedHistory(
	ctx context.Context,
	dbPool *pgxpool.Pool,
	userID, planID int,
	days []plans.WorkoutDay,
	catalog []exercises.Exercise,
	weeks int,
) error {
	logsCreated := 0
	for daysAgo := weeks * 7; daysAgo >= 1; daysAgo-- {
		// roughly four sessions a week
		if rand.Intn(7) >= 4 {
			continue
		}

		day := days[logsCreated%len(days)]
		logDate := time.Now().AddDate(0, 0, -daysAgo)

		var logID int
		if err := dbPool.QueryRow(
			ctx,
			`INSERT INTO workout_log (user_id, plan_id, day_id, log_date, completed, duration_minutes)
			VALUES ($1, $2, $3, $4, true, $5)
			RETURNING id;`,
			userID, planID, day.ID, logDate, 35+rand.Intn(40),
		).Scan(&logID); err != nil {
			return fmt.Errorf("insert workout log: %w", err)
		}

		for e := 0; e < 3; e++ {
			ex := catalog[(logsCreated*3+e)%len(catalog)]
			sets := 3
			reps := make([]int, sets)
			weights := make([]float64, sets)
			base := 20 + rand.Float64()*60
			for s := 0; s < sets; s++ {
				reps[s] = 6 + rand.Intn(6)
				weights[s] = base + float64(daysAgo/7)*(-2.5)
			}
			if _, err := dbPool.Exec(
				ctx,
				`INSERT INTO exercise_log (workout_log_id, exercise_id, sets_completed, reps, weights, notes)
				VALUES ($1, $2, $3, $4, $5, $6);`,
				logID, ex.ID, sets, reps, weights, gofakeit.Sentence(4),
			); err != nil {
				return fmt.Errorf("insert exercise log: %w", err)
			}
		}
		logsCreated++
	}

	log.Printf("%d completed workout logs created", logsCreated)
	return nil
}
