package postgres

import (
	"context"

	"github.com/kerem/fitness-tracker-api/internal/domain"
	"gorm.io/gorm"
)

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) *workoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	return r.db.WithContext(ctx).Create(workout).Error
}

func (r *workoutRepository) GetByID(ctx context.Context, id uint) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.db.WithContext(ctx).First(&workout, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) GetByName(ctx context.Context, name string) (*domain.Workout, error) {
	var workout domain.Workout
	err := r.db.WithContext(ctx).First(&workout, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

func (r *workoutRepository) List(ctx context.Context) ([]*domain.Workout, error) {
	var workouts []*domain.Workout
	err := r.db.WithContext(ctx).Order("id").Find(&workouts).Error
	return workouts, err
}

func (r *workoutRepository) Update(ctx context.Context, workout *domain.Workout) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Workout{}).
		Where("id = ?", workout.ID).
		Updates(map[string]any{
			"name":            workout.Name,
			"muscle":          workout.Muscle,
			"sets":            workout.Sets,
			"repeats":         workout.Repeats,
			"calories_burned": workout.CaloriesBurned,
		})
	return res.RowsAffected, res.Error
}

func (r *workoutRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Workout{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
