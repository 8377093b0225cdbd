package service

import (
	"github.com/kerem/fitness-tracker-api/internal/config"
	"github.com/kerem/fitness-tracker-api/internal/repository"
	"go.uber.org/zap"
)

type Services struct {
	Auth       *AuthService
	User       *UserService
	Attendance *AttendanceService
	Workout    *WorkoutService
	Activity   *ActivityService
	Plan       *PlanService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, log *zap.Logger) *Services {
	return &Services{
		Auth:       NewAuthService(repos.User, cfg, log),
		User:       NewUserService(repos.User, cfg),
		Attendance: NewAttendanceService(repos.Attendance),
		Workout:    NewWorkoutService(repos.Workout),
		Activity:   NewActivityService(repos.Activity, repos.Workout),
		Plan:       NewPlanService(repos.Plan, repos.User),
	}
}
