package domain

// WorkoutPlanEntry links one workout into a named per-user plan. A plan is the
// set of entries sharing (UserID, PlanName).
type WorkoutPlanEntry struct {
	ID        uint   `json:"-" gorm:"primaryKey"`
	PlanName  string `json:"planname" gorm:"not null;uniqueIndex:idx_plan_user_workout"`
	UserID    uint   `json:"-" gorm:"not null;uniqueIndex:idx_plan_user_workout"`
	WorkoutID uint   `json:"-" gorm:"not null;uniqueIndex:idx_plan_user_workout"`
	CreatedBy string `json:"created_by"`
}

// PlanWorkout is the read model for plan listings: a workout row joined with
// the plan entry that references it.
type PlanWorkout struct {
	PlanName       string  `json:"planname" gorm:"column:plan_name"`
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Muscle         string  `json:"muscle"`
	Sets           int     `json:"sets"`
	Repeats        int     `json:"repeats"`
	CaloriesBurned float64 `json:"calories_burned"`
	METValue       float64 `json:"met_value" gorm:"column:met_value"`
	CreatedBy      string  `json:"created_by"`
}
