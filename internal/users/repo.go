package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/homefit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, username, passwordHash string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	createdAt := time.Now()
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO fituser (username, password_hash, created_at)
				VALUES ($1, $2, $3)
			RETURNING id;`,
		username, passwordHash, createdAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("user.id", id))

	return &User{
		ID:        id,
		Username:  username,
		CreatedAt: createdAt,
	}, nil
}

// GetCredentials is used by the auth service for login checks.
func (r *Repo) GetCredentials(ctx context.Context, username string) (userID int, passwordHash string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getCredentials")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`SELECT id, password_hash FROM fituser WHERE username = $1;`,
		username,
	).Scan(&userID, &passwordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, "", ErrUserNotFound
	}
	if err != nil {
		return 0, "", err
	}

	return userID, passwordHash, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var user User
	err = r.db.QueryRow(
		ctx,
		`SELECT id, username, created_at FROM fituser WHERE id = $1;`,
		id,
	).Scan(&user.ID, &user.Username, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetProfile returns the profile of the given user. A user without a
// stored profile row gets an empty profile back, not an error.
func (r *Repo) GetProfile(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	profile := Profile{UserID: userID}
	err = r.db.QueryRow(
		ctx,
		`SELECT height_cm, weight_kg, fitness_goal, preferred_theme
			FROM user_profile WHERE user_id = $1;`,
		userID,
	).Scan(&profile.HeightCm, &profile.WeightKg, &profile.FitnessGoal, &profile.PreferredTheme)
	if errors.Is(err, pgx.ErrNoRows) {
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *Repo) UpdateProfile(ctx context.Context, profile *Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", profile.UserID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_profile (user_id, height_cm, weight_kg, fitness_goal, preferred_theme)
				VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id) DO UPDATE SET
				height_cm = EXCLUDED.height_cm,
				weight_kg = EXCLUDED.weight_kg,
				fitness_goal = EXCLUDED.fitness_goal,
				preferred_theme = EXCLUDED.preferred_theme;`,
		profile.UserID, profile.HeightCm, profile.WeightKg, profile.FitnessGoal, profile.PreferredTheme,
	)
	return err
}
