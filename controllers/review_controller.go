package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sportconnect-api/models"
	"sportconnect-api/utils"
)

type ReviewController struct {
	db *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{db: db}
}

type ReviewRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Rating      int      `json:"rating" binding:"required"`
	PhotoURLs   []string `json:"photo_urls"`
}

func (rc *ReviewController) AddReview(c *gin.Context) {
	userID := c.GetString("user_id")
	routeID := c.Param("id")

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidRating(req.Rating) {
		utils.SendValidationError(c, "Rating must be between 1 and 5")
		return
	}

	var route models.Route
	if err := rc.db.First(&route, "id = ?", routeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
		return
	}

	var existing models.RouteReview
	if err := rc.db.Where("route_id = ? AND user_id = ?", routeID, userID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You already reviewed this route"})
		return
	}

	review := models.RouteReview{
		ID:          uuid.New().String(),
		RouteID:     routeID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Rating:      req.Rating,
		PhotoURLs:   models.StringSlice(req.PhotoURLs),
	}

	if err := rc.db.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review added",
		"review":  review,
	})
}

func (rc *ReviewController) GetReviews(c *gin.Context) {
	routeID := c.Param("id")

	var reviews []models.RouteReview
	if err := rc.db.Preload("User").Where("route_id = ?", routeID).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	for i := range reviews {
		reviews[i].User.Password = ""
	}

	var avg struct {
		AverageRating float64 `json:"average_rating"`
		Count         int64   `json:"count"`
	}
	rc.db.Model(&models.RouteReview{}).
		Select("COALESCE(AVG(rating),0) as average_rating, COUNT(*) as count").
		Where("route_id = ?", routeID).
		Scan(&avg)

	c.JSON(http.StatusOK, gin.H{
		"reviews":        reviews,
		"average_rating": avg.AverageRating,
		"count":          avg.Count,
	})
}

func (rc *ReviewController) UpdateReview(c *gin.Context) {
	userID := c.GetString("user_id")
	reviewID := c.Param("reviewId")

	var review models.RouteReview
	if err := rc.db.First(&review, "id = ?", reviewID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	if review.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the author can edit the review"})
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidRating(req.Rating) {
		utils.SendValidationError(c, "Rating must be between 1 and 5")
		return
	}

	updates := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"rating":      req.Rating,
		"photo_urls":  models.StringSlice(req.PhotoURLs),
	}
	if err := rc.db.Model(&review).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}

	rc.db.First(&review, "id = ?", reviewID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Review updated",
		"review":  review,
	})
}

func (rc *ReviewController) DeleteReview(c *gin.Context) {
	userID := c.GetString("user_id")
	reviewID := c.Param("reviewId")

	var review models.RouteReview
	if err := rc.db.First(&review, "id = ?", reviewID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Review not found")
		return
	}

	if review.UserID != userID {
		utils.SendError(c, http.StatusForbidden, "Only the author can delete the review")
		return
	}

	if err := rc.db.Delete(&review).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete review")
		return
	}

	utils.SendSuccess(c, "Review deleted", nil)
}
