package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sportconnect-api/models"
	"sportconnect-api/services"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

type activityTotals struct {
	TotalActivities int64   `json:"total_activities"`
	TotalDistance   float64 `json:"total_distance"`
	TotalCalories   float64 `json:"total_calories"`
	TotalMinutes    int64   `json:"total_minutes"`
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	user.Password = ""

	var totals activityTotals
	uc.db.Model(&models.Activity{}).
		Select("COUNT(*) as total_activities, COALESCE(SUM(distance),0) as total_distance, COALESCE(SUM(calories_burned),0) as total_calories, COALESCE(SUM(duration_minutes),0) as total_minutes").
		Where("user_id = ?", userID).
		Scan(&totals)

	bmi := services.BMI(user.HeightCm, user.WeightKg)

	c.JSON(http.StatusOK, gin.H{
		"user":      user,
		"stats":     totals,
		"bmi":       bmi,
		"bmi_label": services.BMILabel(bmi),
	})
}

type UpdateProfileRequest struct {
	FirstName       *string  `json:"first_name"`
	LastName        *string  `json:"last_name"`
	Bio             *string  `json:"bio"`
	ProfilePicture  *string  `json:"profile_picture"`
	SportPreference *string  `json:"sport_preference"`
	HeightCm        *float64 `json:"height_cm"`
	WeightKg        *float64 `json:"weight_kg"`
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.ProfilePicture != nil {
		updates["profile_picture"] = *req.ProfilePicture
	}
	if req.SportPreference != nil {
		updates["sport_preference"] = *req.SportPreference
	}
	if req.HeightCm != nil {
		updates["height_cm"] = *req.HeightCm
	}
	if req.WeightKg != nil {
		updates["weight_kg"] = *req.WeightKg
	}

	if len(updates) > 0 {
		if err := uc.db.Model(&user).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	uc.db.First(&user, "id = ?", userID)
	user.Password = ""

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    user,
	})
}
