package domain

import "time"

// Activity is a logged occurrence of a workout for one user.
type Activity struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"-" gorm:"index;not null"`
	WorkoutID      uint      `json:"-" gorm:"not null"`
	Name           string    `json:"name" gorm:"not null"`
	Duration       float64   `json:"duration" gorm:"not null"`
	Date           time.Time `json:"date" gorm:"not null"`
	CaloriesBurned float64   `json:"calories_burned"`
	CreatedAt      time.Time `json:"-"`
}

// ActivityStats aggregates a user's logged activities.
type ActivityStats struct {
	TotalCalories float64 `json:"-" gorm:"column:total_calories"`
	AvgDuration   float64 `json:"-" gorm:"column:avg_duration"`
}
