package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kerem/fitness-tracker-api/internal/api/middleware"
	"github.com/kerem/fitness-tracker-api/internal/domain"
	"github.com/kerem/fitness-tracker-api/internal/service"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService     *service.UserService
	activityService *service.ActivityService
	log             *zap.Logger
}

func NewUserHandler(userService *service.UserService, activityService *service.ActivityService, log *zap.Logger) *UserHandler {
	return &UserHandler{userService: userService, activityService: activityService, log: log}
}

type profileResponse struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Surname string  `json:"surname"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Height  float64 `json:"height"`
	Weight  float64 `json:"weight"`
	IsAdmin bool    `json:"isAdmin"`
}

func toProfileResponse(user *domain.User) profileResponse {
	return profileResponse{
		ID:      user.ID,
		Name:    user.Name,
		Surname: user.Surname,
		Email:   user.Email,
		Phone:   user.Phone,
		Address: user.Address,
		City:    user.City,
		Country: user.Country,
		Height:  user.Height,
		Weight:  user.Weight,
		IsAdmin: user.IsAdmin,
	}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userService.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error("profile lookup failed", zap.Error(err))
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(user))
}

func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stats, err := h.activityService.Stats(r.Context(), claims.UserID, r.URL.Query().Get("timeframe"))
	if err != nil {
		h.log.Error("stats query failed", zap.Error(err))
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *UserHandler) UpdateEmail(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeMessage(w, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.userService.UpdateEmail(r.Context(), claims.UserID, req.Email); err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Email already exists"})
			return
		}
		h.log.Error("email update failed", zap.Error(err))
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": claims.UserID, "email": req.Email})
}

func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Password is required")
		return
	}

	if err := h.userService.UpdatePassword(r.Context(), claims.UserID, req.Password); err != nil {
		h.log.Error("password update failed", zap.Error(err))
		writeServerError(w)
		return
	}

	writeMessage(w, http.StatusOK, "Password updated successfully")
}

type updateUserRequest struct {
	Name    string  `json:"name"`
	Surname string  `json:"surname"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Height  float64 `json:"height"`
	Weight  float64 `json:"weight"`
}

// Update handles PUT /user/{id}: the user themselves, or an admin.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if uint(id) != claims.UserID && !claims.IsAdmin {
		writeMessage(w, http.StatusForbidden, "Unauthorized")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), uint(id), service.UpdateProfileInput{
		Name:    req.Name,
		Surname: req.Surname,
		Phone:   req.Phone,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
		Height:  req.Height,
		Weight:  req.Weight,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error("user update failed", zap.Error(err))
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, toProfileResponse(user))
}

// Delete handles DELETE /user/{id}: the user themselves, or an admin.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if uint(id) != claims.UserID && !claims.IsAdmin {
		writeMessage(w, http.StatusForbidden, "Unauthorized")
		return
	}

	if err := h.userService.Delete(r.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error("user delete failed", zap.Error(err))
		writeServerError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
