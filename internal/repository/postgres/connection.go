package postgres

import (
	"github.com/kerem/fitness-tracker-api/internal/domain"
	"github.com/kerem/fitness-tracker-api/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Unique violations surface as gorm.ErrDuplicatedKey; the attendance
		// append and user registration paths depend on that.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.AttendanceRecord{},
		&domain.Workout{},
		&domain.Activity{},
		&domain.WorkoutPlanEntry{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:       NewUserRepository(db),
		Attendance: NewAttendanceRepository(db),
		Workout:    NewWorkoutRepository(db),
		Activity:   NewActivityRepository(db),
		Plan:       NewPlanRepository(db),
	}
}
