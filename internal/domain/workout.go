package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Workout is an entry in the admin-managed exercise catalog. Activities
// reference workouts by name, so names are unique.
type Workout struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Name           string         `json:"name" gorm:"uniqueIndex;not null"`
	Muscle         string         `json:"muscle" gorm:"not null"`
	Sets           int            `json:"sets" gorm:"not null"`
	Repeats        int            `json:"repeats" gorm:"not null"`
	CaloriesBurned float64        `json:"calories_burned"`
	METValue       float64        `json:"met_value" gorm:"column:met_value"`
	Tags           datatypes.JSON `json:"tags,omitempty"`
	CreatedBy      uint           `json:"-"`
	CreatedAt      time.Time      `json:"-"`
	UpdatedAt      time.Time      `json:"-"`
}
