package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sportconnect-api/models"
	"sportconnect-api/services"
)

type PlannerController struct {
	planner *services.Planner
	tracker *services.Tracker
}

func NewPlannerController(planner *services.Planner, tracker *services.Tracker) *PlannerController {
	return &PlannerController{planner: planner, tracker: tracker}
}

type SetModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

func (pc *PlannerController) SetMode(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SetModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.planner.SetMode(userID, req.Mode); err != nil {
		pc.sendPlannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Planning mode updated", "mode": req.Mode})
}

// Coordinate fields carry no "required" binding: 0 is a legal latitude and
// longitude, so range validation is left to the service layer.
type DrawPointRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (pc *PlannerController) AddDrawPoint(c *gin.Context) {
	userID := c.GetString("user_id")

	var req DrawPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := pc.planner.AddDrawPoint(userID, models.Coordinate{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		pc.sendPlannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Point added", "points": count})
}

func (pc *PlannerController) ClearDrawPoints(c *gin.Context) {
	userID := c.GetString("user_id")
	pc.planner.ClearDrawPoints(userID)
	c.JSON(http.StatusOK, gin.H{"message": "Draw points cleared"})
}

type PlanRequest struct {
	Mode  string   `json:"mode" binding:"required"`
	Start string   `json:"start"`
	Stops []string `json:"stops"`
	End   string   `json:"end"`
}

// Plan resolves the requested input into a navigable route. Address mode
// geocodes start/stops/end; draw mode uses the points accumulated so far.
func (pc *PlannerController) Plan(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var route *models.PlannedRoute
	var err error
	switch req.Mode {
	case services.ModeAddresses:
		route, err = pc.planner.PlanAddresses(c.Request.Context(), userID, req.Start, req.Stops, req.End)
	case services.ModeDraw:
		route, err = pc.planner.PlanDraw(c.Request.Context(), userID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mode must be 'addresses' or 'draw'"})
		return
	}
	if err != nil {
		pc.sendPlannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Route planned",
		"route":   route,
	})
}

func (pc *PlannerController) GetPlannedRoute(c *gin.Context) {
	userID := c.GetString("user_id")

	route, err := pc.planner.PlannedRoute(userID)
	if err != nil {
		pc.sendPlannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"route": route})
}

func (pc *PlannerController) Reset(c *gin.Context) {
	userID := c.GetString("user_id")
	pc.planner.Reset(userID)
	c.JSON(http.StatusOK, gin.H{"message": "Planning session reset"})
}

func (pc *PlannerController) GetMapsLink(c *gin.Context) {
	userID := c.GetString("user_id")

	link, err := pc.planner.MapsLink(userID)
	if err != nil {
		pc.sendPlannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": link})
}

func (pc *PlannerController) StartNavigation(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := pc.planner.StartNavigation(userID); err != nil {
		pc.sendPlannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Navigation started",
		"status":  pc.tracker.Status(userID),
	})
}

type PositionRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (pc *PlannerController) UpdatePosition(c *gin.Context) {
	userID := c.GetString("user_id")

	var req PositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := pc.tracker.UpdatePosition(userID, models.Coordinate{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		pc.sendPlannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

func (pc *PlannerController) StopNavigation(c *gin.Context) {
	userID := c.GetString("user_id")
	pc.planner.StopNavigation(userID)
	c.JSON(http.StatusOK, gin.H{"message": "Navigation stopped"})
}

func (pc *PlannerController) GetNavigationStatus(c *gin.Context) {
	userID := c.GetString("user_id")
	c.JSON(http.StatusOK, gin.H{"status": pc.tracker.Status(userID)})
}

// sendPlannerError converts a service failure into the matching HTTP response.
func (pc *PlannerController) sendPlannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInsufficientPoints):
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least two points are required to plan a route"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNoRouteFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No route could be found for those points"})
	case errors.Is(err, services.ErrNoPlannedRoute):
		c.JSON(http.StatusNotFound, gin.H{"error": "No planned route; plan one first"})
	case errors.Is(err, services.ErrNoActiveSession):
		c.JSON(http.StatusConflict, gin.H{"error": "No active navigation session"})
	case errors.Is(err, services.ErrPlanSuperseded):
		c.JSON(http.StatusConflict, gin.H{"error": "A newer planning request replaced this one"})
	case errors.Is(err, services.ErrLocationUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Location tracking is not available on this server"})
	case errors.Is(err, services.ErrUpstreamUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Route service temporarily unavailable, try again later"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
