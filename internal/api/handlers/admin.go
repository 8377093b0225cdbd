package handlers

import (
	"net/http"

	"github.com/kerem/fitness-tracker-api/internal/api/middleware"
	"github.com/kerem/fitness-tracker-api/internal/service"
	"go.uber.org/zap"
)

type AdminHandler struct {
	userService *service.UserService
	log         *zap.Logger
}

func NewAdminHandler(userService *service.UserService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{userService: userService, log: log}
}

type adminUserResponse struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

// ListUsers returns the full identity listing, admins only.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || !claims.IsAdmin {
		writeMessage(w, http.StatusForbidden, "Unauthorized")
		return
	}

	users, err := h.userService.ListAll(r.Context())
	if err != nil {
		h.log.Error("user listing failed", zap.Error(err))
		writeServerError(w)
		return
	}

	resp := make([]adminUserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, adminUserResponse{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Height: user.Height,
			Weight: user.Weight,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
