package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/homefit/internal/auth"
	"github.com/2beens/homefit/internal/telemetry/tracing"
	"github.com/2beens/homefit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=plans_mocks_test.go -package=plans_test

type plansRepo interface {
	AddPlan(ctx context.Context, plan WorkoutPlan) (*WorkoutPlan, error)
	GetPlan(ctx context.Context, id int) (*WorkoutPlan, error)
	ListPlans(ctx context.Context, userID int) ([]WorkoutPlan, error)
	UpdatePlan(ctx context.Context, plan *WorkoutPlan) error
	DeletePlan(ctx context.Context, id int) error
	PlanOwner(ctx context.Context, planID int) (int, error)
	AddDay(ctx context.Context, planID int, dayName string) (*WorkoutDay, error)
	GetDay(ctx context.Context, dayID int) (*WorkoutDay, error)
	DeleteDay(ctx context.Context, dayID int) error
	DayOwner(ctx context.Context, dayID int) (int, error)
	AddWorkoutExercise(ctx context.Context, we WorkoutExercise) (*WorkoutExercise, error)
	ListDayExercises(ctx context.Context, dayID int) ([]WorkoutExercise, error)
	DeleteWorkoutExercise(ctx context.Context, id int) error
	ReorderDayExercises(ctx context.Context, dayID int, orderedIDs []int) error
	WorkoutExerciseOwner(ctx context.Context, id int) (int, error)
}

type ReorderRequest struct {
	OrderedIDs []int `json:"orderedIds"`
}

type DeletedResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo plansRepo
}

func NewHandler(repo plansRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAddPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var plan WorkoutPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Tracef("new plan, unmarshal json params: %s", err)
		http.Error(w, "add plan failed", http.StatusBadRequest)
		return
	}

	if plan.Name == "" {
		http.Error(w, "error, plan name empty", http.StatusBadRequest)
		return
	}

	plan.UserID = userID
	addedPlan, err := handler.repo.AddPlan(ctx, plan)
	if err != nil {
		log.Errorf("failed to add plan [%s] for user %d: %s", plan.Name, userID, err)
		http.Error(w, "error, failed to add plan", http.StatusInternalServerError)
		return
	}

	handler.writeJson(w, addedPlan, http.StatusCreated)
}

func (handler *Handler) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	plan, ok := handler.ownedPlan(ctx, w, r)
	if !ok {
		return
	}

	handler.writeJson(w, plan, http.StatusOK)
}

func (handler *Handler) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	plans, err := handler.repo.ListPlans(ctx, userID)
	if err != nil {
		log.Errorf("list plans of user %d: %s", userID, err)
		http.Error(w, "failed to get plans", http.StatusInternalServerError)
		return
	}

	handler.writeJson(w, plans, http.StatusOK)
}

func (handler *Handler) HandleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.update")
	defer span.End()

	plan, ok := handler.ownedPlan(ctx, w, r)
	if !ok {
		return
	}

	var update WorkoutPlan
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Tracef("update plan, unmarshal json params: %s", err)
		http.Error(w, "update plan failed", http.StatusBadRequest)
		return
	}

	if update.Name == "" {
		http.Error(w, "error, plan name empty", http.StatusBadRequest)
		return
	}

	plan.Name = update.Name
	plan.Description = update.Description
	if err := handler.repo.UpdatePlan(ctx, plan); err != nil {
		log.Errorf("failed to update plan %d: %s", plan.ID, err)
		http.Error(w, "error, failed to update plan", http.StatusInternalServerError)
		return
	}

	handler.writeJson(w, plan, http.StatusOK)
}

func (handler *Handler) HandleDeletePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.delete")
	defer span.End()

	plan, ok := handler.ownedPlan(ctx, w, r)
	if !ok {
		return
	}

	if err := handler.repo.DeletePlan(ctx, plan.ID); err != nil {
		log.Errorf("failed to delete plan %d: %s", plan.ID, err)
		http.Error(w, "plan not deleted", http.StatusInternalServerError)
		return
	}

	handler.writeJson(w, DeletedResponse{DeletedID: plan.ID}, http.StatusOK)
}

func (handler *Handler) HandleAddDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.addDay")
	defer span.End()

	planID, ok := handler.pathID(w, r, "id")
	if !ok {
		return
	}
	if !handler.checkOwnership(ctx, w, handler.repo.PlanOwner, planID, ErrPlanNotFound, "plan not found") {
		return
	}

	var day WorkoutDay
	if err := json.NewDecoder(r.Body).Decode(&day); err != nil {
		log.Tracef("new day, unmarshal json params: %s", err)
		http.Error(w, "add day failed", http.StatusBadRequest)
		return
	}

	if day.DayName == "" {
		http.Error(w, "error, day name empty", http.StatusBadRequest)
		return
	}

	addedDay, err := handler.repo.AddDay(ctx, planID, day.DayName)
	if err != nil {
		log.Errorf("failed to add day to plan %d: %s", planID, err)
		http.Error(w, "error, failed to add day", http.StatusInternalServerError)
		return
	}

	handler.writeJson(w, addedDay, http.StatusCreated)
}

func (handler *Handler) HandleDeleteDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.deleteDay")
	defer span.End()

	dayID, ok := handler.pathID(w, r, "id")
	if !ok {
		return
	}
	if !handler.checkOwnership(ctx, w, handler.repo.DayOwner, dayID, ErrDayNotFound, "day not found") {
		return
	}

	if err := handler.repo.DeleteDay(ctx, dayID); err != nil {
		log.Errorf("failed to delete day %d: %s", dayID, err)
		http.Error(w, "day not deleted", http.StatusInternalServerError)
		return
	}

	handler.writeJson(w, DeletedResponse{DeletedID: dayID}, http.StatusOK)
}

func (handler *Handler) HandleListDayExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.listDayExercises")
	defer span.End()

	dayID, ok := handler.pathID(w, r, "id")
	if !ok {
		return
	}
	if !handler.checkOwnership(ctx, w, handler.repo.DayOwner, dayID, ErrDayNotFound, "day not found") {
		return
	}

	exercises, err := handler.repo.ListDayExercises(ctx, dayID)
	if err != nil {
		log.Errorf("list day %d exercises: %s", dayID, err)
		http.Error(w, "failed to get day exercises", http.StatusInternalServerError)
		return
	}

	handler.writeJson(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleAddDayExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.addDayExercise")
	defer span.End()

	dayID, ok := handler.pathID(w, r, "id")
	if !ok {
		return
	}
	if !handler.checkOwnership(ctx, w, handler.repo.DayOwner, dayID, ErrDayNotFound, "day not found") {
		return
	}

	var we WorkoutExercise
	if err := json.NewDecoder(r.Body).Decode(&we); err != nil {
		log.Tracef("new day exercise, unmarshal json params: %s", err)
		http.Error(w, "add day exercise failed", http.StatusBadRequest)
		return
	}

	if we.ExerciseID == 0 {
		http.Error(w, "error, exercise id empty", http.StatusBadRequest)
		return
	}
	if we.Sets <= 0 || we.Reps <= 0 {
		http.Error(w, "error, sets and reps must be positive", http.StatusBadRequest)
		return
	}

	we.DayID = dayID
	added, err := handler.repo.AddWorkoutExercise(ctx, we)
	if err != nil {
		log.Errorf("failed to add exercise %d to day %d: %s", we.ExerciseID, dayID, err)
		http.Error(w, "error, failed to add day exercise", http.StatusInternalServerError)
		return
	}

	handler.writeJson(w, added, http.StatusCreated)
}

func (handler *Handler) HandleReorderDayExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.reorderDayExercises")
	defer span.End()

	dayID, ok := handler.pathID(w, r, "id")
	if !ok {
		return
	}
	if !handler.checkOwnership(ctx, w, handler.repo.DayOwner, dayID, ErrDayNotFound, "day not found") {
		return
	}

	var reorderReq ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&reorderReq); err != nil {
		log.Tracef("reorder day exercises, unmarshal json params: %s", err)
		http.Error(w, "reorder failed", http.StatusBadRequest)
		return
	}

	if len(reorderReq.OrderedIDs) == 0 {
		http.Error(w, "error, ordered ids empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.ReorderDayExercises(ctx, dayID, reorderReq.OrderedIDs); err != nil {
		if errors.Is(err, ErrWorkoutExerciseNotFound) {
			http.Error(w, "unknown exercise in order list", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to reorder day %d exercises: %s", dayID, err)
		http.Error(w, "reorder failed", http.StatusInternalServerError)
		return
	}

	exercises, err := handler.repo.ListDayExercises(ctx, dayID)
	if err != nil {
		log.Errorf("list day %d exercises after reorder: %s", dayID, err)
		http.Error(w, "failed to get day exercises", http.StatusInternalServerError)
		return
	}

	handler.writeJson(w, exercises, http.StatusOK)
}

func (handler *Handler) HandleDeleteDayExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.deleteDayExercise")
	defer span.End()

	id, ok := handler.pathID(w, r, "id")
	if !ok {
		return
	}
	if !handler.checkOwnership(ctx, w, handler.repo.WorkoutExerciseOwner, id, ErrWorkoutExerciseNotFound, "workout exercise not found") {
		return
	}

	if err := handler.repo.DeleteWorkoutExercise(ctx, id); err != nil {
		log.Errorf("failed to delete workout exercise %d: %s", id, err)
		http.Error(w, "workout exercise not deleted", http.StatusInternalServerError)
		return
	}

	handler.writeJson(w, DeletedResponse{DeletedID: id}, http.StatusOK)
}

// ownedPlan loads the plan from the path ID and verifies the requesting
// user owns it. Writes the error response itself when not.
func (handler *Handler) ownedPlan(ctx context.Context, w http.ResponseWriter, r *http.Request) (*WorkoutPlan, bool) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return nil, false
	}

	id, ok := handler.pathID(w, r, "id")
	if !ok {
		return nil, false
	}

	plan, err := handler.repo.GetPlan(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("failed to get plan %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}

	if plan.UserID != userID {
		log.Tracef("user %d tried to access plan %d of user %d", userID, plan.ID, plan.UserID)
		http.Error(w, "plan not found", http.StatusNotFound)
		return nil, false
	}

	return plan, true
}

func (handler *Handler) checkOwnership(
	ctx context.Context,
	w http.ResponseWriter,
	ownerOf func(ctx context.Context, id int) (int, error),
	id int,
	notFoundErr error,
	notFoundMsg string,
) bool {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return false
	}

	ownerID, err := ownerOf(ctx, id)
	if err != nil {
		if errors.Is(err, notFoundErr) {
			http.Error(w, notFoundMsg, http.StatusNotFound)
			return false
		}
		log.Errorf("ownership check for %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return false
	}

	if ownerID != userID {
		log.Tracef("user %d tried to access resource %d of user %d", userID, id, ownerID)
		http.Error(w, notFoundMsg, http.StatusNotFound)
		return false
	}

	return true
}

func (handler *Handler) pathID(w http.ResponseWriter, r *http.Request, varName string) (int, bool) {
	idStr := mux.Vars(r)[varName]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (handler *Handler) writeJson(w http.ResponseWriter, payload interface{}, statusCode int) {
	respJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}
