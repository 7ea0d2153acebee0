package models

import (
	"time"
)

type Route struct {
	ID              string      `json:"id" gorm:"primaryKey;size:191"`
	CreatorID       string      `json:"creator_id" gorm:"not null;size:191;index"`
	Title           string      `json:"title" gorm:"not null;size:255"`
	Description     string      `json:"description"`
	Distance        float64     `json:"distance"`         // in km
	DurationMinutes int         `json:"duration_minutes"` // estimated
	SportType       string      `json:"sport_type" gorm:"not null;size:30;index"`
	Difficulty      string      `json:"difficulty" gorm:"size:30;index"`
	Location        string      `json:"location" gorm:"size:255"`
	Latitude        float64     `json:"latitude"`
	Longitude       float64     `json:"longitude"`
	GpxData         string      `json:"gpx_data,omitempty" gorm:"type:longtext"`
	ImageURL        string      `json:"image_url" gorm:"size:500"`
	IsActive        bool        `json:"is_active" gorm:"default:true"`
	Tags            StringSlice `json:"tags" gorm:"type:json"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	Creator      User               `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Participants []RouteParticipant `json:"participants,omitempty" gorm:"foreignKey:RouteID"`
	Reviews      []RouteReview      `json:"reviews,omitempty" gorm:"foreignKey:RouteID"`
}

type RouteParticipant struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	RouteID  string    `json:"route_id" gorm:"not null;size:191;index"`
	UserID   string    `json:"user_id" gorm:"not null;size:191;index"`
	JoinedAt time.Time `json:"joined_at" gorm:"autoCreateTime"`

	Route Route `json:"route,omitempty" gorm:"foreignKey:RouteID"`
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

type RouteReview struct {
	ID          string      `json:"id" gorm:"primaryKey;size:191"`
	RouteID     string      `json:"route_id" gorm:"not null;size:191;index"`
	UserID      string      `json:"user_id" gorm:"not null;size:191;index"`
	Title       string      `json:"title" gorm:"size:255"`
	Description string      `json:"description" gorm:"not null"`
	Rating      int         `json:"rating" gorm:"not null"`
	PhotoURLs   StringSlice `json:"photo_urls" gorm:"type:json"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Route Route `json:"route,omitempty" gorm:"foreignKey:RouteID"`
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
