package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/homefit/internal/auth"
	"github.com/2beens/homefit/internal/plans"
	"github.com/2beens/homefit/internal/telemetry/metrics"
	"github.com/2beens/homefit/internal/telemetry/tracing"
	"github.com/2beens/homefit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=workouts_mocks_test.go -package=workouts_test

type logsRepo interface {
	StartSession(ctx context.Context, userID, dayID int) (*WorkoutLog, bool, error)
	CompleteSession(ctx context.Context, logID, durationMinutes int, entries []ExerciseLog) error
	Get(ctx context.Context, id int) (*WorkoutLog, error)
	RecentCompleted(ctx context.Context, userID, limit int) ([]WorkoutLog, error)
	LogOwner(ctx context.Context, logID int) (int, error)
}

type dayOwnerChecker interface {
	DayOwner(ctx context.Context, dayID int) (int, error)
}

type CompleteSessionRequest struct {
	DurationMinutes int           `json:"durationMinutes"`
	ExerciseLogs    []ExerciseLog `json:"exerciseLogs"`
}

const defaultRecentLimit = 10

type Handler struct {
	repo           logsRepo
	days           dayOwnerChecker
	metricsManager *metrics.Manager
}

func NewHandler(
	repo logsRepo,
	days dayOwnerChecker,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		days:           days,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.start")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	dayIDStr := mux.Vars(r)["dayID"]
	dayID, err := strconv.Atoi(dayIDStr)
	if err != nil {
		http.Error(w, "error, day id NaN", http.StatusBadRequest)
		return
	}

	ownerID, err := handler.days.DayOwner(ctx, dayID)
	if err != nil {
		if errors.Is(err, plans.ErrDayNotFound) {
			http.Error(w, "day not found", http.StatusNotFound)
			return
		}
		log.Errorf("start session, day %d owner check: %s", dayID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if ownerID != userID {
		log.Tracef("user %d tried to start a session for day %d of user %d", userID, dayID, ownerID)
		http.Error(w, "day not found", http.StatusNotFound)
		return
	}

	workoutLog, created, err := handler.repo.StartSession(ctx, userID, dayID)
	if err != nil {
		log.Errorf("failed to start session for user %d, day %d: %s", userID, dayID, err)
		http.Error(w, "error, failed to start session", http.StatusInternalServerError)
		return
	}

	statusCode := http.StatusOK
	if created {
		statusCode = http.StatusCreated
		handler.metricsManager.CounterWorkoutsStarted.Inc()
		log.Debugf("workout session %d started, user %d, day %d", workoutLog.ID, userID, dayID)
	}

	logJson, err := json.Marshal(workoutLog)
	if err != nil {
		log.Errorf("failed to marshal workout log: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logJson, statusCode)
}

func (handler *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.complete")
	defer span.End()

	logID, ok := handler.ownedLog(ctx, w, r)
	if !ok {
		return
	}

	var completeReq CompleteSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&completeReq); err != nil {
		log.Tracef("complete session, unmarshal json params: %s", err)
		http.Error(w, "complete session failed", http.StatusBadRequest)
		return
	}

	if completeReq.DurationMinutes < 0 {
		http.Error(w, "error, duration must not be negative", http.StatusBadRequest)
		return
	}

	if err := handler.repo.CompleteSession(ctx, logID, completeReq.DurationMinutes, completeReq.ExerciseLogs); err != nil {
		if errors.Is(err, ErrLogNotFound) {
			http.Error(w, "workout log not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to complete session %d: %s", logID, err)
		http.Error(w, "error, failed to complete session", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWorkoutsCompleted.Inc()

	completedLog, err := handler.repo.Get(ctx, logID)
	if err != nil {
		log.Errorf("failed to get completed session %d: %s", logID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	logJson, err := json.Marshal(completedLog)
	if err != nil {
		log.Errorf("failed to marshal workout log: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout session %d completed", logID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	logID, ok := handler.ownedLog(ctx, w, r)
	if !ok {
		return
	}

	workoutLog, err := handler.repo.Get(ctx, logID)
	if err != nil {
		if errors.Is(err, ErrLogNotFound) {
			http.Error(w, "workout log not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workout log %d: %s", logID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	logJson, err := json.Marshal(workoutLog)
	if err != nil {
		log.Errorf("failed to marshal workout log: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logJson, http.StatusOK)
}

func (handler *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.recent")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit := defaultRecentLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsedLimit, err := strconv.Atoi(limitStr)
		if err != nil || parsedLimit < 1 || parsedLimit > 100 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsedLimit
	}

	logs, err := handler.repo.RecentCompleted(ctx, userID, limit)
	if err != nil {
		log.Errorf("failed to get recent workouts of user %d: %s", userID, err)
		http.Error(w, "failed to get recent workouts", http.StatusInternalServerError)
		return
	}

	logsJson, err := json.Marshal(logs)
	if err != nil {
		log.Errorf("failed to marshal workout logs: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logsJson, http.StatusOK)
}

// ownedLog reads the log ID from the path and verifies the requesting
// user owns that workout log.
func (handler *Handler) ownedLog(ctx context.Context, w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return 0, false
	}

	logIDStr := mux.Vars(r)["id"]
	logID, err := strconv.Atoi(logIDStr)
	if err != nil {
		http.Error(w, "error, log id NaN", http.StatusBadRequest)
		return 0, false
	}

	ownerID, err := handler.repo.LogOwner(ctx, logID)
	if err != nil {
		if errors.Is(err, ErrLogNotFound) {
			http.Error(w, "workout log not found", http.StatusNotFound)
			return 0, false
		}
		log.Errorf("workout log %d owner check: %s", logID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return 0, false
	}
	if ownerID != userID {
		log.Tracef("user %d tried to access workout log %d of user %d", userID, logID, ownerID)
		http.Error(w, "workout log not found", http.StatusNotFound)
		return 0, false
	}

	return logID, true
}
