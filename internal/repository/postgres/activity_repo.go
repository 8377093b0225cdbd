package postgres

import (
	"context"
	"time"

	"github.com/kerem/fitness-tracker-api/internal/domain"
	"gorm.io/gorm"
)

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *activityRepository {
	return &activityRepository{db: db}
}

// CreateBatch inserts all activities in one transaction; a failure rolls the
// whole batch back so a partial log is never observable.
func (r *activityRepository) CreateBatch(ctx context.Context, activities []*domain.Activity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&activities).Error
	})
}

func (r *activityRepository) GetByID(ctx context.Context, userID, id uint) (*domain.Activity, error) {
	var activity domain.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) ListByUserID(ctx context.Context, userID uint) ([]*domain.Activity, error) {
	var activities []*domain.Activity
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&activities).Error
	return activities, err
}

func (r *activityRepository) Update(ctx context.Context, activity *domain.Activity) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Activity{}).
		Where("id = ? AND user_id = ?", activity.ID, activity.UserID).
		Updates(map[string]any{
			"name":            activity.Name,
			"duration":        activity.Duration,
			"date":            activity.Date,
			"calories_burned": activity.CaloriesBurned,
		})
	return res.RowsAffected, res.Error
}

func (r *activityRepository) Delete(ctx context.Context, userID, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Activity{}, "id = ? AND user_id = ?", id, userID)
	return res.RowsAffected, res.Error
}

func (r *activityRepository) Stats(ctx context.Context, userID uint, since *time.Time) (*domain.ActivityStats, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Activity{}).
		Select("COALESCE(SUM(calories_burned), 0) AS total_calories, COALESCE(AVG(duration), 0) AS avg_duration").
		Where("user_id = ?", userID)
	if since != nil {
		q = q.Where("date >= ?", *since)
	}

	var stats domain.ActivityStats
	if err := q.Scan(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
