package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kerem/fitness-tracker-api/internal/api/middleware"
	"github.com/kerem/fitness-tracker-api/internal/domain"
	"github.com/kerem/fitness-tracker-api/internal/service"
	"go.uber.org/zap"
)

type AttendanceHandler struct {
	attendanceService *service.AttendanceService
	log               *zap.Logger
}

func NewAttendanceHandler(attendanceService *service.AttendanceService, log *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService, log: log}
}

type attendanceRequest struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type attendanceResponse struct {
	Date   string                  `json:"date"`
	Status domain.AttendanceStatus `json:"status"`
}

func (h *AttendanceHandler) Append(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req attendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Date == "" || req.Status == "" {
		writeMessage(w, http.StatusBadRequest, "Date and status are required.")
		return
	}

	date, err := service.ParseDay(req.Date)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid date.")
		return
	}

	err = h.attendanceService.Append(r.Context(), claims.UserID, date, domain.AttendanceStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			writeMessage(w, http.StatusBadRequest, "Invalid status.")
		case errors.Is(err, service.ErrDuplicateAttendance):
			writeMessage(w, http.StatusBadRequest, "Attendance for this day is already logged")
		default:
			h.log.Error("attendance append failed", zap.Error(err))
			writeServerError(w)
		}
		return
	}

	writeMessage(w, http.StatusCreated, "Attendance added successfully")
}

func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	records, err := h.attendanceService.List(r.Context(), claims.UserID)
	if err != nil {
		h.log.Error("attendance list failed", zap.Error(err))
		writeServerError(w)
		return
	}

	resp := make([]attendanceResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, attendanceResponse{Date: record.Day(), Status: record.Status})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AttendanceHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req attendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Date == "" || req.Status == "" {
		writeMessage(w, http.StatusBadRequest, "Date and status are required.")
		return
	}

	date, err := service.ParseDay(req.Date)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid date.")
		return
	}

	err = h.attendanceService.Update(r.Context(), claims.UserID, date, domain.AttendanceStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			writeMessage(w, http.StatusBadRequest, "Invalid status.")
		case errors.Is(err, service.ErrAttendanceNotFound):
			writeMessage(w, http.StatusNotFound, "No attendance record found for this date")
		default:
			h.log.Error("attendance update failed", zap.Error(err))
			writeServerError(w)
		}
		return
	}

	writeMessage(w, http.StatusOK, "Attendance updated successfully")
}

func (h *AttendanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req attendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Date == "" {
		writeMessage(w, http.StatusBadRequest, "Date is required.")
		return
	}

	date, err := service.ParseDay(req.Date)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid date.")
		return
	}

	if err := h.attendanceService.Delete(r.Context(), claims.UserID, date); err != nil {
		if errors.Is(err, service.ErrAttendanceNotFound) {
			writeMessage(w, http.StatusNotFound, "No attendance record found for this date")
			return
		}
		h.log.Error("attendance delete failed", zap.Error(err))
		writeServerError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
