package domain

import (
	"time"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Surname      string    `json:"surname"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	Height       float64   `json:"height"`
	Weight       float64   `json:"weight"`
	IsAdmin      bool      `json:"isAdmin" gorm:"not null;default:false"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Role returns the coarse role label exposed by the login response.
func (u *User) Role() string {
	if u.IsAdmin {
		return "admin"
	}
	return "user"
}
