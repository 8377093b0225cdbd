package service

import (
	"context"
	"errors"

	"github.com/kerem/fitness-tracker-api/internal/domain"
	"github.com/kerem/fitness-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type WorkoutService struct {
	workoutRepo repository.WorkoutRepository
}

func NewWorkoutService(workoutRepo repository.WorkoutRepository) *WorkoutService {
	return &WorkoutService{workoutRepo: workoutRepo}
}

type WorkoutInput struct {
	Name           string
	Muscle         string
	Sets           int
	Repeats        int
	CaloriesBurned float64
}

func (s *WorkoutService) Create(ctx context.Context, createdBy uint, input WorkoutInput) (uint, error) {
	workout := &domain.Workout{
		Name:           input.Name,
		Muscle:         input.Muscle,
		Sets:           input.Sets,
		Repeats:        input.Repeats,
		CaloriesBurned: input.CaloriesBurned,
		CreatedBy:      createdBy,
	}
	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return 0, err
	}
	return workout.ID, nil
}

func (s *WorkoutService) GetByID(ctx context.Context, id uint) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

func (s *WorkoutService) List(ctx context.Context) ([]*domain.Workout, error) {
	return s.workoutRepo.List(ctx)
}

func (s *WorkoutService) Update(ctx context.Context, id uint, input WorkoutInput) error {
	workout := &domain.Workout{
		ID:             id,
		Name:           input.Name,
		Muscle:         input.Muscle,
		Sets:           input.Sets,
		Repeats:        input.Repeats,
		CaloriesBurned: input.CaloriesBurned,
	}
	rows, err := s.workoutRepo.Update(ctx, workout)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (s *WorkoutService) Delete(ctx context.Context, id uint) error {
	rows, err := s.workoutRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}
