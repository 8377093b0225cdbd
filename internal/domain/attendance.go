package domain

import (
	"time"

	"gorm.io/datatypes"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

func (s AttendanceStatus) Valid() bool {
	return s == AttendancePresent || s == AttendanceAbsent
}

// AttendanceRecord is one dated entry in a user's attendance ledger. The
// composite unique index makes the database enforce at most one record per
// (user, day), so a concurrent duplicate append loses at the INSERT.
type AttendanceRecord struct {
	ID        uint             `json:"-" gorm:"primaryKey"`
	UserID    uint             `json:"-" gorm:"not null;uniqueIndex:idx_attendance_user_date"`
	Date      datatypes.Date   `json:"-" gorm:"not null;uniqueIndex:idx_attendance_user_date"`
	Status    AttendanceStatus `json:"status" gorm:"type:varchar(16);not null"`
	CreatedAt time.Time        `json:"-"`
}

// Day returns the record's calendar day in ISO form.
func (r *AttendanceRecord) Day() string {
	return time.Time(r.Date).Format("2006-01-02")
}
