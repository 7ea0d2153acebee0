package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportconnect-api/models"
	"sportconnect-api/repositories"
	"sportconnect-api/services"
)

type NutritionController struct {
	db           *gorm.DB
	localRecords *repositories.LocalRecordRepository
}

func NewNutritionController(db *gorm.DB, localRecords *repositories.LocalRecordRepository) *NutritionController {
	return &NutritionController{db: db, localRecords: localRecords}
}

type LogNutritionRequest struct {
	ActivityID *string             `json:"activity_id"`
	MealType   string              `json:"meal_type" binding:"required"`
	Foods      []services.FoodItem `json:"foods" binding:"required,min=1"`
	Notes      string              `json:"notes"`
}

func (nc *NutritionController) LogNutrition(c *gin.Context) {
	userID := c.GetString("user_id")

	var req LogNutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totals := services.CalculateNutrition(req.Foods)

	foodItems := make(models.JSONData)
	for i, food := range req.Foods {
		foodItems[strconv.Itoa(i)] = map[string]interface{}{
			"name":     food.Name,
			"quantity": food.Quantity,
		}
	}

	log := models.NutritionLog{
		ID:            uuid.New().String(),
		UserID:        userID,
		ActivityID:    req.ActivityID,
		MealType:      req.MealType,
		FoodItems:     foodItems,
		TotalCalories: totals.Calories,
		TotalProtein:  totals.Protein,
		TotalCarbs:    totals.Carbs,
		TotalFats:     totals.Fats,
		TotalFiber:    totals.Fiber,
		Notes:         req.Notes,
	}

	if err := nc.createPrimary(&log); err != nil {
		records, lerr := nc.localRecords.Save(models.LocalKindNutrition, userID, models.JSONData{
			"meal_type": req.MealType,
			"foods":     foodItems,
			"totals": map[string]float64{
				"calories": totals.Calories,
				"protein":  totals.Protein,
				"carbs":    totals.Carbs,
				"fats":     totals.Fats,
				"fiber":    totals.Fiber,
			},
			"notes": req.Notes,
		})
		if lerr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save nutrition log"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Primary store unreachable; record saved locally",
			"storage": StorageLocal,
			"records": records,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Nutrition log added",
		"storage":   StorageRemote,
		"nutrition": log,
	})
}

func (nc *NutritionController) GetNutritionLogs(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var logs []models.NutritionLog
	err := gorm.ErrInvalidDB
	if nc.db != nil {
		err = nc.db.Where("user_id = ?", userID).
			Order("logged_at DESC").Limit(limit).Offset(offset).
			Find(&logs).Error
	}
	if err != nil {
		records, lerr := nc.localRecords.List(models.LocalKindNutrition, userID)
		if lerr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch nutrition logs"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"storage": StorageLocal, "logs": records})
		return
	}

	c.JSON(http.StatusOK, gin.H{"storage": StorageRemote, "logs": logs})
}

type dailyTotals struct {
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFats     float64 `json:"total_fats"`
	TotalFiber    float64 `json:"total_fiber"`
	Meals         int64   `json:"meals"`
}

func (nc *NutritionController) GetDailyTotals(c *gin.Context) {
	userID := c.GetString("user_id")

	var totals dailyTotals
	err := gorm.ErrInvalidDB
	if nc.db != nil {
		err = nc.db.Model(&models.NutritionLog{}).
			Select(`COALESCE(SUM(total_calories),0) as total_calories,
				COALESCE(SUM(total_protein),0) as total_protein,
				COALESCE(SUM(total_carbs),0) as total_carbs,
				COALESCE(SUM(total_fats),0) as total_fats,
				COALESCE(SUM(total_fiber),0) as total_fiber,
				COUNT(*) as meals`).
			Where("user_id = ? AND DATE(logged_at) = CURDATE()", userID).
			Scan(&totals).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch daily totals"})
		return
	}

	c.JSON(http.StatusOK, totals)
}

func (nc *NutritionController) createPrimary(log *models.NutritionLog) error {
	if nc.db == nil {
		return gorm.ErrInvalidDB
	}
	return nc.db.Create(log).Error
}
