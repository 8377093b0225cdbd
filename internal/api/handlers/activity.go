package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/kerem/fitness-tracker-api/internal/api/middleware"
	"github.com/kerem/fitness-tracker-api/internal/service"
	"go.uber.org/zap"
)

type ActivityHandler struct {
	activityService *service.ActivityService
	log             *zap.Logger
}

func NewActivityHandler(activityService *service.ActivityService, log *zap.Logger) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, log: log}
}

type activityEntry struct {
	Name           string  `json:"name"`
	Duration       float64 `json:"duration"`
	Date           string  `json:"date"`
	CaloriesBurned float64 `json:"calories_burned"`
}

func parseActivityDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	activities, err := h.activityService.List(r.Context(), claims.UserID)
	if err != nil {
		h.log.Error("activity listing failed", zap.Error(err))
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "id is required.")
		return
	}

	activity, err := h.activityService.GetByID(r.Context(), claims.UserID, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			writeMessage(w, http.StatusNotFound, "Activity not found")
			return
		}
		h.log.Error("activity lookup failed", zap.Error(err))
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

// LogBatch accepts an array of activities and inserts them all or none.
func (h *ActivityHandler) LogBatch(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Activities []activityEntry `json:"activities"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Activities) == 0 {
		writeMessage(w, http.StatusBadRequest, "Activities array is required and cannot be empty.")
		return
	}

	inputs := make([]service.ActivityInput, 0, len(req.Activities))
	for _, entry := range req.Activities {
		if entry.Name == "" || entry.Duration == 0 || entry.Date == "" {
			writeMessage(w, http.StatusBadRequest, "Name, duration, and date are required for each activity.")
			return
		}
		date, err := parseActivityDate(entry.Date)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid date.")
			return
		}
		inputs = append(inputs, service.ActivityInput{
			Name:           entry.Name,
			Duration:       entry.Duration,
			Date:           date,
			CaloriesBurned: entry.CaloriesBurned,
		})
	}

	if err := h.activityService.LogBatch(r.Context(), claims.UserID, inputs); err != nil {
		var unknownWorkout *service.UnknownWorkoutError
		if errors.As(err, &unknownWorkout) {
			writeMessage(w, http.StatusBadRequest, "No matching workout found for \""+unknownWorkout.Name+"\".")
			return
		}
		h.log.Error("activity batch insert failed", zap.Error(err))
		writeServerError(w)
		return
	}

	writeMessage(w, http.StatusCreated, "Activities logged successfully!")
}

func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "id is required.")
		return
	}

	var entry activityEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := parseActivityDate(entry.Date)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid date.")
		return
	}

	err = h.activityService.Update(r.Context(), claims.UserID, uint(id), service.ActivityInput{
		Name:           entry.Name,
		Duration:       entry.Duration,
		Date:           date,
		CaloriesBurned: entry.CaloriesBurned,
	})
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			writeMessage(w, http.StatusNotFound, "Activity not found")
			return
		}
		h.log.Error("activity update failed", zap.Error(err))
		writeServerError(w)
		return
	}

	writeMessage(w, http.StatusOK, "Activity updated successfully!")
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "id is required.")
		return
	}

	if err := h.activityService.Delete(r.Context(), claims.UserID, uint(id)); err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			writeMessage(w, http.StatusNotFound, "Activity not found")
			return
		}
		h.log.Error("activity delete failed", zap.Error(err))
		writeServerError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
