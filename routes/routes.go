package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sportconnect-api/config"
	"sportconnect-api/controllers"
	"sportconnect-api/middleware"
	"sportconnect-api/repositories"
	"sportconnect-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService, planner *services.Planner, tracker *services.Tracker, localRecords *repositories.LocalRecordRepository) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService, planner)
	userController := controllers.NewUserController(db)
	routeController := controllers.NewRouteController(db, localRecords)
	reviewController := controllers.NewReviewController(db)
	activityController := controllers.NewActivityController(db, localRecords)
	nutritionController := controllers.NewNutritionController(db, localRecords)
	plannerController := controllers.NewPlannerController(planner, tracker)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/verify-code", authController.VerifyCode)
		auth.POST("/resend-verification", authController.ResendVerificationCode)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// Logout ends the caller's planning session, so it needs identity
		protected.POST("/auth/logout", authController.Logout)

		// User routes
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
		}

		// Community route routes
		communityRoutes := protected.Group("/routes")
		{
			communityRoutes.GET("/", routeController.GetRoutes)
			communityRoutes.POST("/", routeController.CreateRoute)
			communityRoutes.GET("/:id", routeController.GetRoute)
			communityRoutes.PUT("/:id", routeController.UpdateRoute)
			communityRoutes.DELETE("/:id", routeController.DeleteRoute)
			communityRoutes.POST("/:id/join", routeController.JoinRoute)
			communityRoutes.DELETE("/:id/leave", routeController.LeaveRoute)
			communityRoutes.GET("/:id/reviews", reviewController.GetReviews)
			communityRoutes.POST("/:id/reviews", reviewController.AddReview)
			communityRoutes.PUT("/:id/reviews/:reviewId", reviewController.UpdateReview)
			communityRoutes.DELETE("/:id/reviews/:reviewId", reviewController.DeleteReview)
		}

		// Activity routes
		activities := protected.Group("/activities")
		{
			activities.GET("/", activityController.GetActivities)
			activities.POST("/", activityController.LogActivity)
			activities.GET("/stats", activityController.GetStats)
			activities.POST("/sync", activityController.SyncDevice)
		}

		// Nutrition routes
		nutrition := protected.Group("/nutrition")
		{
			nutrition.GET("/", nutritionController.GetNutritionLogs)
			nutrition.POST("/", nutritionController.LogNutrition)
			nutrition.GET("/daily", nutritionController.GetDailyTotals)
		}

		// Route planner routes
		planner := protected.Group("/planner")
		{
			planner.PUT("/mode", plannerController.SetMode)
			planner.POST("/points", plannerController.AddDrawPoint)
			planner.DELETE("/points", plannerController.ClearDrawPoints)
			planner.POST("/plan", plannerController.Plan)
			planner.GET("/route", plannerController.GetPlannedRoute)
			planner.DELETE("/reset", plannerController.Reset)
			planner.GET("/maps-link", plannerController.GetMapsLink)
			planner.POST("/navigation/start", plannerController.StartNavigation)
			planner.POST("/navigation/position", plannerController.UpdatePosition)
			planner.POST("/navigation/stop", plannerController.StopNavigation)
			planner.GET("/navigation/status", plannerController.GetNavigationStatus)
		}
	}
}

// SetupCORS configures the CORS middleware
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
