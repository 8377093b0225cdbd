package repository

import (
	"context"
	"time"

	"github.com/kerem/fitness-tracker-api/internal/domain"
	"gorm.io/datatypes"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByIDAndRefreshToken(ctx context.Context, id uint, token string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateEmail(ctx context.Context, id uint, email string) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	UpdateRefreshToken(ctx context.Context, id uint, token string) error
	Delete(ctx context.Context, id uint) (int64, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type AttendanceRepository interface {
	Create(ctx context.Context, record *domain.AttendanceRecord) error
	ListByUserID(ctx context.Context, userID uint) ([]*domain.AttendanceRecord, error)
	UpdateStatus(ctx context.Context, userID uint, date datatypes.Date, status domain.AttendanceStatus) (int64, error)
	Delete(ctx context.Context, userID uint, date datatypes.Date) (int64, error)
}

type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) error
	GetByID(ctx context.Context, id uint) (*domain.Workout, error)
	GetByName(ctx context.Context, name string) (*domain.Workout, error)
	List(ctx context.Context) ([]*domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type ActivityRepository interface {
	CreateBatch(ctx context.Context, activities []*domain.Activity) error
	GetByID(ctx context.Context, userID, id uint) (*domain.Activity, error)
	ListByUserID(ctx context.Context, userID uint) ([]*domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) (int64, error)
	Delete(ctx context.Context, userID, id uint) (int64, error)
	Stats(ctx context.Context, userID uint, since *time.Time) (*domain.ActivityStats, error)
}

type PlanRepository interface {
	CreateEntries(ctx context.Context, entries []*domain.WorkoutPlanEntry) error
	ReplacePlan(ctx context.Context, userID uint, planName string, entries []*domain.WorkoutPlanEntry) error
	ListVisible(ctx context.Context, userID uint) ([]*domain.PlanWorkout, error)
	ListPlanWorkouts(ctx context.Context, userID uint, planName string) ([]*domain.Workout, error)
	DeletePlan(ctx context.Context, userID uint, planName string) (int64, error)
}

type Repositories struct {
	User       UserRepository
	Attendance AttendanceRepository
	Workout    WorkoutRepository
	Activity   ActivityRepository
	Plan       PlanRepository
}
