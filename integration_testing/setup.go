package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/2beens/homefit/internal"
	"github.com/2beens/homefit/internal/config"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"
	testDBName = "homefit_test"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) *Suite {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             "test-version-info",
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)

	return suite
}

func (s *Suite) cleanup() {
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	if s.server != nil {
		if err := s.server.GracefulShutdown(); err != nil {
			log.Printf("server shutdown: %s", err)
		}
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Environment:                 "testing",
		Host:                        serverHost,
		Port:                        serverPort,
		LogLevel:                    "trace",
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PostgresHost:                "localhost",
		PostgresPort:                postgresPort,
		PostgresDBName:              testDBName,
		PrometheusMetricsHost:       "localhost",
		PrometheusMetricsPort:       "9001",
		LoginRateLimitAllowedPerMin: 60,
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=" + testDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/%s?sslmode=disable", pgPort, testDBName)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	s.DB = db

	if err := s.dockerPool.Retry(func() error {
		return db.Ping()
	}); err != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	if _, err := db.Exec(initSQL); err != nil {
		return "", fmt.Errorf("run init script: %s", err)
	}

	return pgPort, nil
}

const initSQL = `
CREATE TABLE public.fituser
(
    id            SERIAL PRIMARY KEY,
    username      VARCHAR NOT NULL UNIQUE,
    password_hash VARCHAR NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE public.user_profile
(
    id              SERIAL PRIMARY KEY,
    user_id         INTEGER NOT NULL UNIQUE REFERENCES public.fituser (id) ON DELETE CASCADE,
    height_cm       DOUBLE PRECISION,
    weight_kg       DOUBLE PRECISION,
    fitness_goal    VARCHAR NOT NULL DEFAULT '',
    preferred_theme VARCHAR NOT NULL DEFAULT ''
);

CREATE TABLE public.exercise
(
    id          SERIAL PRIMARY KEY,
    name        VARCHAR NOT NULL,
    description TEXT    NOT NULL DEFAULT '',
    video_url   VARCHAR NOT NULL DEFAULT '',
    image_path  VARCHAR NOT NULL DEFAULT ''
);
CREATE INDEX ix_exercise_name ON public.exercise (name);

CREATE TABLE public.workout_plan
(
    id          SERIAL PRIMARY KEY,
    user_id     INTEGER NOT NULL REFERENCES public.fituser (id) ON DELETE CASCADE,
    name        VARCHAR NOT NULL,
    description TEXT    NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX ix_workout_plan_user_id ON public.workout_plan (user_id);

CREATE TABLE public.workout_day
(
    id       SERIAL PRIMARY KEY,
    plan_id  INTEGER NOT NULL REFERENCES public.workout_plan (id) ON DELETE CASCADE,
    day_name VARCHAR NOT NULL
);
CREATE INDEX ix_workout_day_plan_id ON public.workout_day (plan_id);

CREATE TABLE public.workout_exercise
(
    id           SERIAL PRIMARY KEY,
    day_id       INTEGER NOT NULL REFERENCES public.workout_day (id) ON DELETE CASCADE,
    exercise_id  INTEGER NOT NULL REFERENCES public.exercise (id) ON DELETE CASCADE,
    sets         INTEGER NOT NULL,
    reps         INTEGER NOT NULL,
    rest_seconds INTEGER NOT NULL DEFAULT 0,
    position     INTEGER NOT NULL
);
CREATE INDEX ix_workout_exercise_day_id ON public.workout_exercise (day_id);

CREATE TABLE public.workout_log
(
    id               SERIAL PRIMARY KEY,
    user_id          INTEGER NOT NULL REFERENCES public.fituser (id) ON DELETE CASCADE,
    plan_id          INTEGER NOT NULL,
    day_id           INTEGER NOT NULL,
    log_date         DATE    NOT NULL,
    completed        BOOLEAN NOT NULL DEFAULT FALSE,
    duration_minutes INTEGER NOT NULL DEFAULT 0,
    UNIQUE (user_id, day_id, log_date)
);
CREATE INDEX ix_workout_log_user_id_log_date ON public.workout_log (user_id, log_date);

CREATE TABLE public.exercise_log
(
    id             SERIAL PRIMARY KEY,
    workout_log_id INTEGER NOT NULL REFERENCES public.workout_log (id) ON DELETE CASCADE,
    exercise_id    INTEGER NOT NULL REFERENCES public.exercise (id) ON DELETE CASCADE,
    sets_completed INTEGER NOT NULL DEFAULT 0,
    reps           INTEGER[],
    weights        DOUBLE PRECISION[],
    notes          TEXT,
    UNIQUE (workout_log_id, exercise_id)
);
CREATE INDEX ix_exercise_log_exercise_id ON public.exercise_log (exercise_id);
`
