package postgres

import (
	"context"

	"github.com/kerem/fitness-tracker-api/internal/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *attendanceRepository {
	return &attendanceRepository{db: db}
}

// Create appends one record. The (user_id, date) unique index rejects a second
// record for the same day with gorm.ErrDuplicatedKey, so the check and the
// write are a single atomic statement.
func (r *attendanceRepository) Create(ctx context.Context, record *domain.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepository) ListByUserID(ctx context.Context, userID uint) ([]*domain.AttendanceRecord, error) {
	var records []*domain.AttendanceRecord
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&records).Error
	return records, err
}

func (r *attendanceRepository) UpdateStatus(ctx context.Context, userID uint, date datatypes.Date, status domain.AttendanceStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.AttendanceRecord{}).
		Where("user_id = ? AND date = ?", userID, date).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *attendanceRepository) Delete(ctx context.Context, userID uint, date datatypes.Date) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&domain.AttendanceRecord{})
	return res.RowsAffected, res.Error
}
