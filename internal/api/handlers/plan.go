package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kerem/fitness-tracker-api/internal/api/middleware"
	"github.com/kerem/fitness-tracker-api/internal/service"
	"go.uber.org/zap"
)

type PlanHandler struct {
	planService *service.PlanService
	log         *zap.Logger
}

func NewPlanHandler(planService *service.PlanService, log *zap.Logger) *PlanHandler {
	return &PlanHandler{planService: planService, log: log}
}

type planRequest struct {
	PlanName   string `json:"planname"`
	WorkoutIDs []uint `json:"workout_ids"`
}

func (h *PlanHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlanName == "" || len(req.WorkoutIDs) == 0 {
		writeMessage(w, http.StatusBadRequest, "Plan name and an array of workout IDs are required.")
		return
	}

	if err := h.planService.AddWorkouts(r.Context(), claims.UserID, req.PlanName, req.WorkoutIDs); err != nil {
		h.log.Error("plan insert failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Failed to add workouts to plan.")
		return
	}

	writeMessage(w, http.StatusCreated, "Workouts added to plan successfully.")
}

func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	groups, err := h.planService.ListGrouped(r.Context(), claims.UserID)
	if err != nil {
		h.log.Error("plan listing failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch workout plans.")
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	planName := chi.URLParam(r, "planname")
	workouts, err := h.planService.ListWorkouts(r.Context(), claims.UserID, planName)
	if err != nil {
		h.log.Error("plan lookup failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch workouts for the plan.")
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	planName := chi.URLParam(r, "planname")

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || planName == "" || req.PlanName == "" || len(req.WorkoutIDs) == 0 {
		writeMessage(w, http.StatusBadRequest, "Plan name, new plan name, and an array of workout IDs are required.")
		return
	}

	if err := h.planService.Replace(r.Context(), claims.UserID, planName, req.PlanName, req.WorkoutIDs); err != nil {
		h.log.Error("plan update failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Failed to update plan.")
		return
	}

	writeMessage(w, http.StatusOK, "Plan updated successfully.")
}

func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	planName := chi.URLParam(r, "planname")
	if err := h.planService.Delete(r.Context(), claims.UserID, planName); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			writeMessage(w, http.StatusNotFound, "Plan not found.")
			return
		}
		h.log.Error("plan delete failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Failed to delete plan.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
