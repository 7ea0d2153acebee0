package models

import (
	"time"
)

type NutritionLog struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	UserID        string    `json:"user_id" gorm:"not null;size:191;index"`
	ActivityID    *string   `json:"activity_id" gorm:"size:191"`
	MealType      string    `json:"meal_type" gorm:"not null;size:30"`
	FoodItems     JSONData  `json:"food_items" gorm:"type:json"`
	TotalCalories float64   `json:"total_calories"`
	TotalProtein  float64   `json:"total_protein"`
	TotalCarbs    float64   `json:"total_carbs"`
	TotalFats     float64   `json:"total_fats"`
	TotalFiber    float64   `json:"total_fiber"`
	Notes         string    `json:"notes" gorm:"size:500"`
	LoggedAt      time.Time `json:"logged_at" gorm:"autoCreateTime"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
