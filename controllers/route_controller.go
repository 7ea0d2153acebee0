package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportconnect-api/models"
	"sportconnect-api/repositories"
	"sportconnect-api/utils"
)

type RouteController struct {
	db           *gorm.DB
	localRecords *repositories.LocalRecordRepository
}

func NewRouteController(db *gorm.DB, localRecords *repositories.LocalRecordRepository) *RouteController {
	return &RouteController{db: db, localRecords: localRecords}
}

type CreateRouteRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Distance    float64  `json:"distance"`
	Duration    int      `json:"duration"` // minutes
	SportType   string   `json:"sport_type" binding:"required"`
	Difficulty  string   `json:"difficulty"`
	Location    string   `json:"location"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	GpxData     string   `json:"gpx_data"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags"`
}

func (rc *RouteController) CreateRoute(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidSportType(req.SportType) {
		utils.SendValidationError(c, "Unknown sport type")
		return
	}
	if !utils.IsValidLatitude(req.Latitude) || !utils.IsValidLongitude(req.Longitude) {
		utils.SendValidationError(c, "Coordinates out of range")
		return
	}

	route := models.Route{
		ID:              uuid.New().String(),
		CreatorID:       userID,
		Title:           req.Title,
		Description:     req.Description,
		Distance:        req.Distance,
		DurationMinutes: req.Duration,
		SportType:       req.SportType,
		Difficulty:      req.Difficulty,
		Location:        req.Location,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		GpxData:         req.GpxData,
		ImageURL:        req.ImageURL,
		IsActive:        true,
		Tags:            models.StringSlice(req.Tags),
	}

	if err := rc.createPrimary(&route); err != nil {
		records, lerr := rc.localRecords.Save(models.LocalKindRoute, userID, models.JSONData{
			"title":       req.Title,
			"description": req.Description,
			"distance":    req.Distance,
			"duration":    req.Duration,
			"sport_type":  req.SportType,
			"difficulty":  req.Difficulty,
			"location":    req.Location,
			"latitude":    req.Latitude,
			"longitude":   req.Longitude,
		})
		if lerr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create route"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Primary store unreachable; route draft saved locally",
			"storage": StorageLocal,
			"records": records,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Route created successfully",
		"storage": StorageRemote,
		"route":   route,
	})
}

func (rc *RouteController) GetRoutes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset := (page - 1) * limit

	if rc.db == nil {
		// Primary store unreachable; answer with the caller's local drafts
		records, lerr := rc.localRecords.List(models.LocalKindRoute, c.GetString("user_id"))
		if lerr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch routes"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"storage": StorageLocal, "routes": records})
		return
	}

	query := rc.db.Preload("Creator").Where("is_active = ?", true)

	if sportType := c.Query("sport_type"); sportType != "" {
		query = query.Where("sport_type = ?", sportType)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location LIKE ?", "%"+location+"%")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	query.Model(&models.Route{}).Count(&total)

	var routes []models.Route
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&routes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch routes"})
		return
	}

	for i := range routes {
		routes[i].Creator.Password = ""
	}

	utils.SendPaginated(c, routes, page, limit, total)
}

func (rc *RouteController) GetRoute(c *gin.Context) {
	routeID := c.Param("id")

	var route models.Route
	if err := rc.db.Preload("Creator").Preload("Reviews").Preload("Reviews.User").
		First(&route, "id = ?", routeID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Route not found")
		return
	}

	var participantsCount int64
	rc.db.Model(&models.RouteParticipant{}).Where("route_id = ?", routeID).Count(&participantsCount)

	route.Creator.Password = ""
	for i := range route.Reviews {
		route.Reviews[i].User.Password = ""
	}

	c.JSON(http.StatusOK, gin.H{
		"route":              route,
		"participants_count": participantsCount,
	})
}

func (rc *RouteController) UpdateRoute(c *gin.Context) {
	userID := c.GetString("user_id")
	routeID := c.Param("id")

	var route models.Route
	if err := rc.db.First(&route, "id = ?", routeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	if route.CreatorID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the creator can edit the route"})
		return
	}

	var req CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":            req.Title,
		"description":      req.Description,
		"distance":         req.Distance,
		"duration_minutes": req.Duration,
		"sport_type":       req.SportType,
		"difficulty":       req.Difficulty,
		"location":         req.Location,
		"latitude":         req.Latitude,
		"longitude":        req.Longitude,
		"gpx_data":         req.GpxData,
		"image_url":        req.ImageURL,
		"tags":             models.StringSlice(req.Tags),
	}

	if err := rc.db.Model(&route).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update route"})
		return
	}

	rc.db.First(&route, "id = ?", routeID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Route updated successfully",
		"route":   route,
	})
}

func (rc *RouteController) DeleteRoute(c *gin.Context) {
	userID := c.GetString("user_id")
	routeID := c.Param("id")

	var route models.Route
	if err := rc.db.First(&route, "id = ?", routeID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Route not found")
		return
	}

	if route.CreatorID != userID {
		utils.SendError(c, http.StatusForbidden, "Only the creator can delete the route")
		return
	}

	rc.db.Where("route_id = ?", routeID).Delete(&models.RouteParticipant{})
	rc.db.Where("route_id = ?", routeID).Delete(&models.RouteReview{})

	if err := rc.db.Delete(&route).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete route")
		return
	}

	utils.SendSuccess(c, "Route deleted successfully", nil)
}

func (rc *RouteController) JoinRoute(c *gin.Context) {
	userID := c.GetString("user_id")
	routeID := c.Param("id")

	var route models.Route
	if err := rc.db.First(&route, "id = ?", routeID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Route not found")
		return
	}

	var existing models.RouteParticipant
	if err := rc.db.Where("route_id = ? AND user_id = ?", routeID, userID).First(&existing).Error; err == nil {
		utils.SendSuccess(c, "Already joined this route", gin.H{"joined": false})
		return
	}

	participant := models.RouteParticipant{
		RouteID: routeID,
		UserID:  userID,
	}
	if err := rc.db.Create(&participant).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to join route")
		return
	}

	utils.SendCreated(c, "Joined the route", gin.H{"joined": true})
}

func (rc *RouteController) LeaveRoute(c *gin.Context) {
	userID := c.GetString("user_id")
	routeID := c.Param("id")

	result := rc.db.Where("route_id = ? AND user_id = ?", routeID, userID).Delete(&models.RouteParticipant{})
	if result.Error != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to leave route")
		return
	}
	if result.RowsAffected == 0 {
		utils.SendError(c, http.StatusNotFound, "Not a participant of this route")
		return
	}

	utils.SendSuccess(c, "Left the route", nil)
}

func (rc *RouteController) createPrimary(route *models.Route) error {
	if rc.db == nil {
		return gorm.ErrInvalidDB
	}
	return rc.db.Create(route).Error
}
