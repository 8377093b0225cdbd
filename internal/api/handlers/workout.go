package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kerem/fitness-tracker-api/internal/api/middleware"
	"github.com/kerem/fitness-tracker-api/internal/service"
	"go.uber.org/zap"
)

type WorkoutHandler struct {
	workoutService *service.WorkoutService
	log            *zap.Logger
}

func NewWorkoutHandler(workoutService *service.WorkoutService, log *zap.Logger) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService, log: log}
}

type workoutRequest struct {
	Name           string  `json:"name"`
	Muscle         string  `json:"muscle"`
	Sets           int     `json:"sets"`
	Repeats        int     `json:"repeats"`
	CaloriesBurned float64 `json:"calories_burned"`
}

func (h *WorkoutHandler) List(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.workoutService.List(r.Context())
	if err != nil {
		h.log.Error("workout listing failed", zap.Error(err))
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (h *WorkoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid workout id")
		return
	}

	workout, err := h.workoutService.GetByID(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			writeMessage(w, http.StatusNotFound, "Workout not found")
			return
		}
		h.log.Error("workout lookup failed", zap.Error(err))
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

// Create adds a catalog entry, admins only.
func (h *WorkoutHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || !claims.IsAdmin {
		writeMessage(w, http.StatusForbidden, "Unauthorized")
		return
	}

	var req workoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Muscle == "" || req.Sets == 0 || req.Repeats == 0 {
		writeMessage(w, http.StatusBadRequest, "Name, muscle, sets, and repeats are required.")
		return
	}

	workoutID, err := h.workoutService.Create(r.Context(), claims.UserID, service.WorkoutInput{
		Name:           req.Name,
		Muscle:         req.Muscle,
		Sets:           req.Sets,
		Repeats:        req.Repeats,
		CaloriesBurned: req.CaloriesBurned,
	})
	if err != nil {
		h.log.Error("workout create failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Database error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "Workout added!",
		"workoutId": workoutID,
	})
}

func (h *WorkoutHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || !claims.IsAdmin {
		writeMessage(w, http.StatusForbidden, "Unauthorized")
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid workout id")
		return
	}

	var req workoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.workoutService.Update(r.Context(), uint(id), service.WorkoutInput{
		Name:           req.Name,
		Muscle:         req.Muscle,
		Sets:           req.Sets,
		Repeats:        req.Repeats,
		CaloriesBurned: req.CaloriesBurned,
	})
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			writeMessage(w, http.StatusNotFound, "Workout not found")
			return
		}
		h.log.Error("workout update failed", zap.Error(err))
		writeServerError(w)
		return
	}

	writeMessage(w, http.StatusOK, "Workout updated successfully")
}

func (h *WorkoutHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || !claims.IsAdmin {
		writeMessage(w, http.StatusForbidden, "Unauthorized")
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid workout id")
		return
	}

	if err := h.workoutService.Delete(r.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			writeMessage(w, http.StatusNotFound, "Workout not found")
			return
		}
		h.log.Error("workout delete failed", zap.Error(err))
		writeServerError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
