package service

import (
	"context"
	"errors"
	"time"

	"github.com/kerem/fitness-tracker-api/internal/domain"
	"github.com/kerem/fitness-tracker-api/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrDuplicateAttendance = errors.New("attendance for this day is already logged")
	ErrAttendanceNotFound  = errors.New("no attendance record found for this date")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidStatus       = errors.New("invalid status")
)

// AttendanceService implements the per-user attendance ledger. Every mutation
// is a single statement against the attendance table, so a crash can never
// leave a duplicate or half-written record.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
}

func NewAttendanceService(attendanceRepo repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo}
}

// ParseDay normalizes a client-supplied date to calendar-day granularity.
// Accepts a bare ISO day or a full timestamp; time-of-day is discarded. A
// timestamp with an offset is converted to UTC first, so the day is always
// the UTC calendar day.
func ParseDay(value string) (datatypes.Date, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return datatypes.Date(day), nil
		}
	}
	return datatypes.Date{}, ErrInvalidDate
}

func (s *AttendanceService) Append(ctx context.Context, userID uint, date datatypes.Date, status domain.AttendanceStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	record := &domain.AttendanceRecord{
		UserID: userID,
		Date:   date,
		Status: status,
	}
	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateAttendance
		}
		return err
	}
	return nil
}

func (s *AttendanceService) List(ctx context.Context, userID uint) ([]*domain.AttendanceRecord, error) {
	return s.attendanceRepo.ListByUserID(ctx, userID)
}

func (s *AttendanceService) Update(ctx context.Context, userID uint, date datatypes.Date, status domain.AttendanceStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	rows, err := s.attendanceRepo.UpdateStatus(ctx, userID, date, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAttendanceNotFound
	}
	return nil
}

func (s *AttendanceService) Delete(ctx context.Context, userID uint, date datatypes.Date) error {
	rows, err := s.attendanceRepo.Delete(ctx, userID, date)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAttendanceNotFound
	}
	return nil
}
