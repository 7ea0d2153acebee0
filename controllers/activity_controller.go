package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportconnect-api/models"
	"sportconnect-api/repositories"
	"sportconnect-api/services"
)

// Storage discriminator values returned with every write so callers can tell
// a fallback save from a primary one without parsing messages.
const (
	StorageRemote = "remote"
	StorageLocal  = "local"
)

type ActivityController struct {
	db           *gorm.DB
	localRecords *repositories.LocalRecordRepository
}

func NewActivityController(db *gorm.DB, localRecords *repositories.LocalRecordRepository) *ActivityController {
	return &ActivityController{db: db, localRecords: localRecords}
}

type LogActivityRequest struct {
	RouteID          *string         `json:"route_id"`
	ActivityType     string          `json:"activity_type" binding:"required"`
	Distance         float64         `json:"distance"`
	Duration         int             `json:"duration" binding:"required,gt=0"` // minutes
	AverageSpeed     float64         `json:"average_speed"`
	Steps            *int            `json:"steps"`
	ElevationGain    float64         `json:"elevation_gain"`
	HeartRateAvg     *int            `json:"heart_rate_avg"`
	HeartRateMax     *int            `json:"heart_rate_max"`
	WeatherCondition string          `json:"weather_condition"`
	StartedAt        *time.Time      `json:"started_at"`
	EndedAt          *time.Time      `json:"ended_at"`
	Weight           float64         `json:"weight"`
	DeviceData       models.JSONData `json:"device_data"`
}

func (ac *ActivityController) LogActivity(c *gin.Context) {
	userID := c.GetString("user_id")

	var req LogActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Derived figures: MET calories from weight, distance/extra calories
	// from steps when the device reported them.
	var caloriesBurned float64
	if req.Weight > 0 {
		caloriesBurned = services.CaloriesBurned(req.Weight, req.ActivityType, float64(req.Duration))
	}

	distance := req.Distance
	if req.Steps != nil && *req.Steps > 0 {
		distance = services.DistanceFromSteps(*req.Steps, 0)
		weight := req.Weight
		if weight <= 0 {
			weight = 70
		}
		caloriesBurned += services.CaloriesFromSteps(*req.Steps, weight)
	}

	activity := models.Activity{
		ID:               uuid.New().String(),
		UserID:           userID,
		RouteID:          req.RouteID,
		ActivityType:     req.ActivityType,
		Distance:         distance,
		DurationMinutes:  req.Duration,
		AverageSpeed:     req.AverageSpeed,
		CaloriesBurned:   caloriesBurned,
		Steps:            req.Steps,
		ElevationGain:    req.ElevationGain,
		HeartRateAvg:     req.HeartRateAvg,
		HeartRateMax:     req.HeartRateMax,
		WeatherCondition: req.WeatherCondition,
		StartedAt:        req.StartedAt,
		EndedAt:          req.EndedAt,
		DeviceData:       req.DeviceData,
	}

	if err := ac.createPrimary(&activity); err != nil {
		ac.saveFallback(c, models.LocalKindActivity, userID, models.JSONData{
			"activity_type":   activity.ActivityType,
			"distance":        activity.Distance,
			"duration":        activity.DurationMinutes,
			"calories_burned": activity.CaloriesBurned,
			"steps":           activity.Steps,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Activity logged successfully",
		"storage":  StorageRemote,
		"activity": activity,
	})
}

func (ac *ActivityController) GetActivities(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var activities []models.Activity
	err := gorm.ErrInvalidDB
	if ac.db != nil {
		err = ac.db.Where("user_id = ?", userID).
			Order("started_at DESC").Limit(limit).Offset(offset).
			Find(&activities).Error
	}
	if err != nil {
		// Primary store unreachable; answer from the local fallback
		records, lerr := ac.localRecords.List(models.LocalKindActivity, userID)
		if lerr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"storage": StorageLocal, "activities": records})
		return
	}

	c.JSON(http.StatusOK, gin.H{"storage": StorageRemote, "activities": activities})
}

type activityTypeStats struct {
	ActivityType  string  `json:"activity_type"`
	Count         int64   `json:"count"`
	TotalDistance float64 `json:"total_distance"`
	TotalTime     int64   `json:"total_time"`
	TotalCalories float64 `json:"total_calories"`
	AvgDistance   float64 `json:"avg_distance"`
	MaxDistance   float64 `json:"max_distance"`
}

func (ac *ActivityController) GetStats(c *gin.Context) {
	userID := c.GetString("user_id")

	var stats []activityTypeStats
	err := gorm.ErrInvalidDB
	if ac.db != nil {
		err = ac.db.Model(&models.Activity{}).
			Select(`activity_type,
				COUNT(*) as count,
				COALESCE(SUM(distance),0) as total_distance,
				COALESCE(SUM(duration_minutes),0) as total_time,
				COALESCE(SUM(calories_burned),0) as total_calories,
				COALESCE(AVG(distance),0) as avg_distance,
				COALESCE(MAX(distance),0) as max_distance`).
			Where("user_id = ?", userID).
			Group("activity_type").
			Scan(&stats).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

type SyncDeviceRequest struct {
	DeviceType string          `json:"device_type" binding:"required"`
	Data       models.JSONData `json:"data" binding:"required"`
}

// SyncDevice ingests an activity reported by a fitness device.
func (ac *ActivityController) SyncDevice(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SyncDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activityType, _ := req.Data["activity_type"].(string)
	if activityType == "" {
		activityType = "running"
	}

	activity := models.Activity{
		ID:           uuid.New().String(),
		UserID:       userID,
		ActivityType: activityType,
		DeviceData:   req.Data,
	}
	if distance, ok := req.Data["distance"].(float64); ok {
		activity.Distance = distance
	}
	if duration, ok := req.Data["duration"].(float64); ok {
		activity.DurationMinutes = int(duration)
	}
	if calories, ok := req.Data["calories"].(float64); ok {
		activity.CaloriesBurned = calories
	}
	if steps, ok := req.Data["steps"].(float64); ok {
		s := int(steps)
		activity.Steps = &s
	}

	if err := ac.createPrimary(&activity); err != nil {
		ac.saveFallback(c, models.LocalKindActivity, userID, models.JSONData{
			"device_type": req.DeviceType,
			"data":        req.Data,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Device data synced",
		"storage":  StorageRemote,
		"activity": activity,
	})
}

func (ac *ActivityController) createPrimary(activity *models.Activity) error {
	if ac.db == nil {
		return gorm.ErrInvalidDB
	}
	return ac.db.Create(activity).Error
}

func (ac *ActivityController) saveFallback(c *gin.Context, kind, userID string, payload models.JSONData) {
	records, err := ac.localRecords.Save(kind, userID, payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save record"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Primary store unreachable; record saved locally",
		"storage": StorageLocal,
		"records": records,
	})
}
