package stats

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2beens/homefit/internal/auth"
	"github.com/2beens/homefit/internal/telemetry/tracing"
	"github.com/2beens/homefit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	defaultStatsDays    = 30
	defaultProgressDays = 90
	defaultTrendWindow  = 3
	maxPeriodDays       = 365
)

type ProgressResponse struct {
	Samples  []ProgressSample `json:"samples"`
	Progress VolumeProgress   `json:"progress"`
}

type Handler struct {
	analyzer  *Analyzer
	progress  *Progress
	suggester *Suggester
}

func NewHandler(logs logsRepo, plansRepo plansRepo) *Handler {
	return &Handler{
		analyzer:  NewAnalyzer(logs),
		progress:  NewProgress(logs),
		suggester: NewSuggester(logs, plansRepo),
	}
}

func (handler *Handler) HandleUserStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.userStats")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	days, ok := periodDays(w, r, defaultStatsDays)
	if !ok {
		return
	}

	userStats, err := handler.analyzer.UserStats(ctx, userID, days)
	if err != nil {
		log.Errorf("failed to get stats of user %d: %s", userID, err)
		http.Error(w, "failed to get stats", http.StatusInternalServerError)
		return
	}

	statsJson, err := json.Marshal(userStats)
	if err != nil {
		log.Errorf("failed to marshal user stats: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, statsJson, http.StatusOK)
}

func (handler *Handler) HandleExerciseProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.exerciseProgress")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	exerciseIDStr := mux.Vars(r)["exerciseID"]
	exerciseID, err := strconv.Atoi(exerciseIDStr)
	if err != nil {
		http.Error(w, "error, exercise id NaN", http.StatusBadRequest)
		return
	}

	days, ok := periodDays(w, r, defaultProgressDays)
	if !ok {
		return
	}

	window := defaultTrendWindow
	if windowStr := r.URL.Query().Get("window"); windowStr != "" {
		window, err = strconv.Atoi(windowStr)
		if err != nil || window < 2 {
			http.Error(w, "invalid window", http.StatusBadRequest)
			return
		}
	}

	samples, err := handler.progress.ExerciseProgress(ctx, userID, exerciseID, days)
	if err != nil {
		log.Errorf("failed to get progress of exercise %d for user %d: %s", exerciseID, userID, err)
		http.Error(w, "failed to get exercise progress", http.StatusInternalServerError)
		return
	}

	progressRespJson, err := json.Marshal(ProgressResponse{
		Samples:  samples,
		Progress: CalculateVolumeProgress(samples, window),
	})
	if err != nil {
		log.Errorf("failed to marshal progress response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, progressRespJson, http.StatusOK)
}

func (handler *Handler) HandleSuggestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.suggestion")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	suggestion, err := handler.suggester.Suggest(ctx, userID)
	if err != nil {
		log.Errorf("failed to get workout suggestion for user %d: %s", userID, err)
		http.Error(w, "failed to get workout suggestion", http.StatusInternalServerError)
		return
	}

	if suggestion == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	suggestionJson, err := json.Marshal(suggestion)
	if err != nil {
		log.Errorf("failed to marshal suggestion: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, suggestionJson, http.StatusOK)
}

func periodDays(w http.ResponseWriter, r *http.Request, defaultDays int) (int, bool) {
	days := defaultDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsedDays, err := strconv.Atoi(daysStr)
		if err != nil || parsedDays < 1 || parsedDays > maxPeriodDays {
			http.Error(w, "invalid days", http.StatusBadRequest)
			return 0, false
		}
		days = parsedDays
	}
	return days, true
}
