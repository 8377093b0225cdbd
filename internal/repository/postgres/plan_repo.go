package postgres

import (
	"context"

	"github.com/kerem/fitness-tracker-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *planRepository {
	return &planRepository{db: db}
}

func (r *planRepository) CreateEntries(ctx context.Context, entries []*domain.WorkoutPlanEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entries).Error
	})
}

// ReplacePlan swaps a plan's entries for a new set in one transaction, so a
// half-replaced plan is never visible.
func (r *planRepository) ReplacePlan(ctx context.Context, userID uint, planName string, entries []*domain.WorkoutPlanEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND plan_name = ?", userID, planName).
			Delete(&domain.WorkoutPlanEntry{}).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entries).Error
	})
}

// ListVisible returns the user's own plan entries plus admin-created ones,
// joined with their workouts.
func (r *planRepository) ListVisible(ctx context.Context, userID uint) ([]*domain.PlanWorkout, error) {
	var rows []*domain.PlanWorkout
	err := r.db.WithContext(ctx).
		Table("workout_plan_entries AS wp").
		Select("wp.plan_name, wp.created_by, w.id, w.name, w.muscle, w.sets, w.repeats, w.calories_burned, w.met_value").
		Joins("INNER JOIN workouts w ON w.id = wp.workout_id").
		Joins("INNER JOIN users u ON u.id = wp.user_id").
		Where("wp.user_id = ? OR u.is_admin = ?", userID, true).
		Order("wp.plan_name, w.id").
		Scan(&rows).Error
	return rows, err
}

func (r *planRepository) ListPlanWorkouts(ctx context.Context, userID uint, planName string) ([]*domain.Workout, error) {
	var workouts []*domain.Workout
	err := r.db.WithContext(ctx).
		Table("workouts AS w").
		Select("w.*").
		Joins("INNER JOIN workout_plan_entries wp ON wp.workout_id = w.id").
		Where("wp.user_id = ? AND wp.plan_name = ?", userID, planName).
		Order("w.id").
		Scan(&workouts).Error
	return workouts, err
}

func (r *planRepository) DeletePlan(ctx context.Context, userID uint, planName string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND plan_name = ?", userID, planName).
		Delete(&domain.WorkoutPlanEntry{})
	return res.RowsAffected, res.Error
}
