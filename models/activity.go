package models

import (
	"time"
)

type Activity struct {
	ID               string     `json:"id" gorm:"primaryKey;size:191"`
	UserID           string     `json:"user_id" gorm:"not null;size:191;index"`
	RouteID          *string    `json:"route_id" gorm:"size:191"`
	ActivityType     string     `json:"activity_type" gorm:"not null;size:30;index"`
	Distance         float64    `json:"distance"`         // in km
	DurationMinutes  int        `json:"duration_minutes"` // in minutes
	AverageSpeed     float64    `json:"average_speed"`    // in km/h
	CaloriesBurned   float64    `json:"calories_burned"`
	Steps            *int       `json:"steps"`
	ElevationGain    float64    `json:"elevation_gain"` // in meters
	HeartRateAvg     *int       `json:"heart_rate_avg"`
	HeartRateMax     *int       `json:"heart_rate_max"`
	WeatherCondition string     `json:"weather_condition" gorm:"size:50"`
	StartedAt        *time.Time `json:"started_at"`
	EndedAt          *time.Time `json:"ended_at"`
	DeviceData       JSONData   `json:"device_data" gorm:"type:json"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
