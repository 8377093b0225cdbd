package service

import (
	"context"
	"errors"

	"github.com/kerem/fitness-tracker-api/internal/domain"
	"github.com/kerem/fitness-tracker-api/internal/repository"
	"gorm.io/gorm"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlanService struct {
	planRepo repository.PlanRepository
	userRepo repository.UserRepository
}

func NewPlanService(planRepo repository.PlanRepository, userRepo repository.UserRepository) *PlanService {
	return &PlanService{planRepo: planRepo, userRepo: userRepo}
}

func (s *PlanService) buildEntries(ctx context.Context, userID uint, planName string, workoutIDs []uint) ([]*domain.WorkoutPlanEntry, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	entries := make([]*domain.WorkoutPlanEntry, 0, len(workoutIDs))
	for _, workoutID := range workoutIDs {
		entries = append(entries, &domain.WorkoutPlanEntry{
			PlanName:  planName,
			UserID:    userID,
			WorkoutID: workoutID,
			CreatedBy: user.Name,
		})
	}
	return entries, nil
}

// AddWorkouts inserts the plan entries in one transaction; duplicates within
// the plan are ignored rather than rejected.
func (s *PlanService) AddWorkouts(ctx context.Context, userID uint, planName string, workoutIDs []uint) error {
	entries, err := s.buildEntries(ctx, userID, planName, workoutIDs)
	if err != nil {
		return err
	}
	return s.planRepo.CreateEntries(ctx, entries)
}

// Replace renames a plan and swaps its workouts atomically.
func (s *PlanService) Replace(ctx context.Context, userID uint, planName, newPlanName string, workoutIDs []uint) error {
	entries, err := s.buildEntries(ctx, userID, newPlanName, workoutIDs)
	if err != nil {
		return err
	}
	return s.planRepo.ReplacePlan(ctx, userID, planName, entries)
}

type PlanGroup struct {
	PlanName string                `json:"planname"`
	Workouts []*domain.PlanWorkout `json:"workouts"`
}

// ListGrouped returns the plans visible to the user, grouped by plan name.
func (s *PlanService) ListGrouped(ctx context.Context, userID uint) ([]*PlanGroup, error) {
	rows, err := s.planRepo.ListVisible(ctx, userID)
	if err != nil {
		return nil, err
	}

	groups := make([]*PlanGroup, 0)
	index := make(map[string]*PlanGroup)
	for _, row := range rows {
		group, ok := index[row.PlanName]
		if !ok {
			group = &PlanGroup{PlanName: row.PlanName, Workouts: []*domain.PlanWorkout{}}
			index[row.PlanName] = group
			groups = append(groups, group)
		}
		group.Workouts = append(group.Workouts, row)
	}
	return groups, nil
}

func (s *PlanService) ListWorkouts(ctx context.Context, userID uint, planName string) ([]*domain.Workout, error) {
	return s.planRepo.ListPlanWorkouts(ctx, userID, planName)
}

func (s *PlanService) Delete(ctx context.Context, userID uint, planName string) error {
	rows, err := s.planRepo.DeletePlan(ctx, userID, planName)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPlanNotFound
	}
	return nil
}
