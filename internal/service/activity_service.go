package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/kerem/fitness-tracker-api/internal/domain"
	"github.com/kerem/fitness-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var ErrActivityNotFound = errors.New("activity not found")

// UnknownWorkoutError reports a logged activity naming a workout that is not
// in the catalog.
type UnknownWorkoutError struct {
	Name string
}

func (e *UnknownWorkoutError) Error() string {
	return fmt.Sprintf("no matching workout found for %q", e.Name)
}

type ActivityService struct {
	activityRepo repository.ActivityRepository
	workoutRepo  repository.WorkoutRepository
}

func NewActivityService(activityRepo repository.ActivityRepository, workoutRepo repository.WorkoutRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo, workoutRepo: workoutRepo}
}

type ActivityInput struct {
	Name           string
	Duration       float64
	Date           time.Time
	CaloriesBurned float64
}

// LogBatch resolves each activity against the workout catalog and inserts all
// of them atomically. An unknown workout anywhere in the batch rejects the
// whole batch.
func (s *ActivityService) LogBatch(ctx context.Context, userID uint, inputs []ActivityInput) error {
	activities := make([]*domain.Activity, 0, len(inputs))
	for _, input := range inputs {
		workout, err := s.workoutRepo.GetByName(ctx, input.Name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &UnknownWorkoutError{Name: input.Name}
			}
			return err
		}

		calories := input.CaloriesBurned
		if calories == 0 {
			calories = workout.CaloriesBurned
		}

		activities = append(activities, &domain.Activity{
			UserID:         userID,
			WorkoutID:      workout.ID,
			Name:           input.Name,
			Duration:       input.Duration,
			Date:           input.Date,
			CaloriesBurned: calories,
		})
	}

	return s.activityRepo.CreateBatch(ctx, activities)
}

func (s *ActivityService) GetByID(ctx context.Context, userID, id uint) (*domain.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return activity, nil
}

func (s *ActivityService) List(ctx context.Context, userID uint) ([]*domain.Activity, error) {
	return s.activityRepo.ListByUserID(ctx, userID)
}

func (s *ActivityService) Update(ctx context.Context, userID, id uint, input ActivityInput) error {
	activity := &domain.Activity{
		ID:             id,
		UserID:         userID,
		Name:           input.Name,
		Duration:       input.Duration,
		Date:           input.Date,
		CaloriesBurned: input.CaloriesBurned,
	}
	rows, err := s.activityRepo.Update(ctx, activity)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrActivityNotFound
	}
	return nil
}

func (s *ActivityService) Delete(ctx context.Context, userID, id uint) error {
	rows, err := s.activityRepo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrActivityNotFound
	}
	return nil
}

type StatsResult struct {
	TotalCalories int64   `json:"total_calories"`
	AvgDuration   float64 `json:"avg_duration"`
	Timeframe     string  `json:"timeframe"`
}

// Stats aggregates the user's logged activities over an optional timeframe
// (daily, weekly, monthly); anything else means lifetime.
func (s *ActivityService) Stats(ctx context.Context, userID uint, timeframe string) (*StatsResult, error) {
	var since *time.Time
	now := time.Now()
	switch timeframe {
	case "daily":
		t := now.AddDate(0, 0, -1)
		since = &t
	case "weekly":
		t := now.AddDate(0, 0, -7)
		since = &t
	case "monthly":
		t := now.AddDate(0, -1, 0)
		since = &t
	default:
		timeframe = "lifetime"
	}

	stats, err := s.activityRepo.Stats(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	return &StatsResult{
		TotalCalories: int64(stats.TotalCalories),
		AvgDuration:   math.Round(stats.AvgDuration*100) / 100,
		Timeframe:     timeframe,
	}, nil
}
