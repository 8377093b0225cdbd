package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/kerem/fitness-tracker-api/internal/service"
	"go.uber.org/zap"
)

// RefreshCookieName holds the refresh token between sessions.
const RefreshCookieName = "refreshToken"

type AuthHandler struct {
	authService *service.AuthService
	log         *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

type RegisterRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Name must be at least 3 characters long."),
			validation.Length(3, 0).Error("Name must be at least 3 characters long."),
		),
		validation.Field(&r.Email,
			validation.Required.Error("A valid email is required."),
			is.Email.Error("A valid email is required."),
		),
		validation.Field(&r.Password,
			validation.Required.Error("Password must be at least 6 characters long."),
			validation.Length(6, 0).Error("Password must be at least 6 characters long."),
		),
		validation.Field(&r.Height,
			validation.Min(50.0).Error("Height must be between 50 and 300 cm."),
			validation.Max(300.0).Error("Height must be between 50 and 300 cm."),
		),
		validation.Field(&r.Weight,
			validation.Min(10.0).Error("Weight must be between 10 and 300 kg."),
			validation.Max(300.0).Error("Weight must be between 10 and 300 kg."),
		),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fieldErr := range verrs {
				msgs = append(msgs, fieldErr.Error())
			}
			writeJSON(w, http.StatusBadRequest, map[string]any{"errors": msgs})
			return
		}
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, err := h.authService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Height:   req.Height,
		Weight:   req.Weight,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Email already exists"})
			return
		}
		h.log.Error("registration failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Database error"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered",
		"userId":  userID,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email and password are required.")
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		h.log.Error("login failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Server error.")
		return
	}

	setRefreshCookie(w, result.RefreshToken)
	writeJSON(w, http.StatusOK, map[string]string{
		"accessToken": result.AccessToken,
		"userRole":    result.User.Role(),
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		writeMessage(w, http.StatusUnauthorized, "Refresh token is required.")
		return
	}

	result, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRefreshTokenInvalid):
			writeMessage(w, http.StatusForbidden, "Invalid or expired refresh token.")
		case errors.Is(err, service.ErrRefreshTokenRevoked):
			writeMessage(w, http.StatusForbidden, "Invalid refresh token.")
		default:
			h.log.Error("token refresh failed", zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Server error.")
		}
		return
	}

	setRefreshCookie(w, result.RefreshToken)
	writeJSON(w, http.StatusOK, map[string]string{"accessToken": result.AccessToken})
}

func setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
