package models

import (
	"time"
)

type User struct {
	ID              string    `json:"id" gorm:"primaryKey;size:191"`
	Username        string    `json:"username" gorm:"uniqueIndex;not null;size:50"`
	Email           string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password        string    `json:"-" gorm:"not null;size:255"`
	EmailVerified   bool      `json:"email_verified" gorm:"default:false"`
	FirstName       string    `json:"first_name" gorm:"size:100"`
	LastName        string    `json:"last_name" gorm:"size:100"`
	Bio             string    `json:"bio" gorm:"size:500"`
	ProfilePicture  *string   `json:"profile_picture" gorm:"size:500"`
	SportPreference string    `json:"sport_preference" gorm:"default:'running';size:30"`
	HeightCm        float64   `json:"height_cm" gorm:"default:0"`
	WeightKg        float64   `json:"weight_kg" gorm:"default:0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationships
	Routes        []Route        `json:"routes,omitempty" gorm:"foreignKey:CreatorID"`
	Activities    []Activity     `json:"activities,omitempty" gorm:"foreignKey:UserID"`
	NutritionLogs []NutritionLog `json:"nutrition_logs,omitempty" gorm:"foreignKey:UserID"`
}
