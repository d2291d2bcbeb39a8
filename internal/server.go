package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/homefit/internal/auth"
	"github.com/2beens/homefit/internal/config"
	"github.com/2beens/homefit/internal/db"
	"github.com/2beens/homefit/internal/exercises"
	"github.com/2beens/homefit/internal/middleware"
	"github.com/2beens/homefit/internal/plans"
	"github.com/2beens/homefit/internal/stats"
	"github.com/2beens/homefit/internal/telemetry/metrics"
	"github.com/2beens/homefit/internal/telemetry/tracing"
	"github.com/2beens/homefit/internal/users"
	"github.com/2beens/homefit/internal/workouts"
	"github.com/2beens/homefit/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/multierr"
)

// abandonedLogMaxAge is how long a started but never completed session
// log survives before the housekeeping job removes it.
const abandonedLogMaxAge = 48 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	authService  *auth.Service
	loginChecker *auth.LoginChecker

	cronJobs *cron.Cron

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("homefit", "service", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	rdb.AddHook(redisotel.NewTracingHook())

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "homefit-service")
	if err != nil {
		return nil, err
	}

	usersRepo := users.NewRepo(dbPool)
	authService := auth.NewService(usersRepo, auth.DefaultTTL, rdb)
	workoutsRepo := workouts.NewRepo(dbPool)

	cronJobs := cron.New()
	if err := cronJobs.AddFunc("@every 8h", func() {
		authService.ScanAndClean(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("add session clean cron job: %w", err)
	}
	if err := cronJobs.AddFunc("@every 12h", func() {
		before := time.Now().Add(-abandonedLogMaxAge)
		removed, err := workoutsRepo.DeleteAbandoned(context.Background(), before)
		if err != nil {
			log.Errorf("failed to delete abandoned workout logs: %s", err)
			return
		}
		if removed > 0 {
			log.Debugf("deleted %d abandoned workout logs", removed)
		}
	}); err != nil {
		return nil, fmt.Errorf("add abandoned logs cron job: %w", err)
	}

	return &Server{
		versionInfo:  params.VersionInfo,
		config:       params.Config,
		dbPool:       dbPool,
		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),
		cronJobs:     cronJobs,

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("homefit-router"))

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "I am a fitness tracker, here to serve you")
	}).Methods("GET")
	r.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET")
	r.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		pkg.WriteTextResponseOK(w, "pong")
	}).Methods("GET")

	usersRepo := users.NewRepo(s.dbPool)
	usersHandler := users.NewHandler(usersRepo, s.authService, s.metricsManager)
	r.HandleFunc("/register", usersHandler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	r.HandleFunc("/profile", usersHandler.HandleGetProfile).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", usersHandler.HandleUpdateProfile).Methods("PUT", "OPTIONS").Name("update-profile")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	authRouter := r.PathPrefix("/a").Subrouter()
	authRouter.Use(middleware.RateLimit(
		reqRateLimiter,
		s.metricsManager,
		"login",
		s.config.LoginRateLimitAllowedPerMin,
	))
	authRouter.HandleFunc("/login", usersHandler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	authRouter.HandleFunc("/logout", usersHandler.HandleLogout).Methods("GET", "OPTIONS").Name("logout")

	catalogRepo := exercises.NewCachedRepo(exercises.NewRepo(s.dbPool))
	exercisesHandler := exercises.NewHandler(catalogRepo)
	r.HandleFunc("/exercises", exercisesHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	// the catalog is also browsable without a session; registered before
	// the {id} routes so mux does not capture "catalog" as an id
	r.HandleFunc("/exercises/catalog", exercisesHandler.HandleList).Methods("GET", "OPTIONS").Name("public-list-exercises")
	r.HandleFunc("/exercises/catalog/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("public-get-exercise")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id}", exercisesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")

	plansRepo := plans.NewRepo(s.dbPool)
	plansHandler := plans.NewHandler(plansRepo)
	r.HandleFunc("/plans", plansHandler.HandleAddPlan).Methods("POST", "OPTIONS").Name("new-plan")
	r.HandleFunc("/plans", plansHandler.HandleListPlans).Methods("GET", "OPTIONS").Name("list-plans")
	r.HandleFunc("/plans/{id}", plansHandler.HandleGetPlan).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/plans/{id}", plansHandler.HandleUpdatePlan).Methods("PUT", "OPTIONS").Name("update-plan")
	r.HandleFunc("/plans/{id}", plansHandler.HandleDeletePlan).Methods("DELETE", "OPTIONS").Name("delete-plan")
	r.HandleFunc("/plans/{id}/days", plansHandler.HandleAddDay).Methods("POST", "OPTIONS").Name("new-day")
	r.HandleFunc("/days/{id}", plansHandler.HandleDeleteDay).Methods("DELETE", "OPTIONS").Name("delete-day")
	r.HandleFunc("/days/{id}/exercises", plansHandler.HandleListDayExercises).Methods("GET", "OPTIONS").Name("list-day-exercises")
	r.HandleFunc("/days/{id}/exercises", plansHandler.HandleAddDayExercise).Methods("POST", "OPTIONS").Name("new-day-exercise")
	r.HandleFunc("/days/{id}/exercises/order", plansHandler.HandleReorderDayExercises).Methods("PUT", "OPTIONS").Name("reorder-day-exercises")
	r.HandleFunc("/workout-exercises/{id}", plansHandler.HandleDeleteDayExercise).Methods("DELETE", "OPTIONS").Name("delete-day-exercise")

	workoutsRepo := workouts.NewRepo(s.dbPool)
	workoutsHandler := workouts.NewHandler(workoutsRepo, plansRepo, s.metricsManager)
	r.HandleFunc("/workouts/start/{dayID}", workoutsHandler.HandleStart).Methods("POST", "OPTIONS").Name("start-workout")
	r.HandleFunc("/workouts/recent", workoutsHandler.HandleRecent).Methods("GET", "OPTIONS").Name("recent-workouts")
	r.HandleFunc("/workouts/{logID}/complete", workoutsHandler.HandleComplete).Methods("POST", "OPTIONS").Name("complete-workout")
	r.HandleFunc("/workouts/{logID}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")

	statsHandler := stats.NewHandler(workoutsRepo, plansRepo)
	r.HandleFunc("/stats", statsHandler.HandleUserStats).Methods("GET", "OPTIONS").Name("user-stats")
	r.HandleFunc("/stats/progress/{exerciseID}", statsHandler.HandleExerciseProgress).Methods("GET", "OPTIONS").Name("exercise-progress")
	r.HandleFunc("/stats/suggestion", statsHandler.HandleSuggestion).Methods("GET", "OPTIONS").Name("workout-suggestion")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("homefit service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.cronJobs.Start()
	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)
	s.cronJobs.Stop()

	s.otelShutdown()
	log.Trace("otel shut down ...")

	var shutdownErr error
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("close redis client: %w", err))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown http server: %w", err))
		}
	}
	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			shutdownErr = multierr.Append(shutdownErr, fmt.Errorf("shutdown metrics http server: %w", err))
		}
	}

	log.Warnln("server shut down")
	return shutdownErr
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
