package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sportconnect-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Route{},
		&models.RouteParticipant{},
		&models.RouteReview{},
		&models.Activity{},
		&models.NutritionLog{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// Prevent joining the same route twice
	if err := db.Exec("ALTER TABLE route_participants ADD CONSTRAINT uk_route_participants_route_user UNIQUE (route_id, user_id)").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add unique constraint for route_participants: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX idx_activities_user_started ON activities(user_id, started_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for activities: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX idx_nutrition_logs_user_logged ON nutrition_logs(user_id, logged_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for nutrition_logs: %v\n", err)
	}

	return nil
}

// SeedData populates the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	testUsers := []models.User{
		{
			ID:              "user-1",
			Username:        "maria_runner",
			Email:           "maria@example.com",
			Password:        "$2a$10$dummy", // This should be properly hashed in real scenarios
			EmailVerified:   true,
			FirstName:       "Maria",
			LastName:        "Lopez",
			SportPreference: "running",
			HeightCm:        168,
			WeightKg:        60,
		},
		{
			ID:              "user-2",
			Username:        "carlos_cycles",
			Email:           "carlos@example.com",
			Password:        "$2a$10$dummy",
			EmailVerified:   true,
			FirstName:       "Carlos",
			LastName:        "Garcia",
			SportPreference: "cycling",
			HeightCm:        180,
			WeightKg:        78,
		},
	}

	for _, user := range testUsers {
		if err := db.Create(&user).Error; err != nil {
			fmt.Printf("Warning: Could not create test user %s: %v\n", user.Username, err)
		}
	}

	testRoutes := []models.Route{
		{
			ID:              "route-1",
			CreatorID:       "user-1",
			Title:           "Retiro park loop",
			Description:     "Flat loop around the park, good for intervals.",
			Distance:        5.2,
			DurationMinutes: 32,
			SportType:       "running",
			Difficulty:      "easy",
			Location:        "Madrid",
			Latitude:        40.4153,
			Longitude:       -3.6845,
			Tags:            models.StringSlice{"park", "flat", "beginner"},
		},
		{
			ID:              "route-2",
			CreatorID:       "user-2",
			Title:           "Casa de Campo climbs",
			Description:     "Rolling gravel sections with two short climbs.",
			Distance:        21.4,
			DurationMinutes: 75,
			SportType:       "cycling",
			Difficulty:      "moderate",
			Location:        "Madrid",
			Latitude:        40.4189,
			Longitude:       -3.7317,
			Tags:            models.StringSlice{"gravel", "climb"},
		},
	}

	for _, route := range testRoutes {
		if err := db.Create(&route).Error; err != nil {
			fmt.Printf("Warning: Could not create test route %s: %v\n", route.Title, err)
		}
	}

	fmt.Println("Database seeded with test data")
	return nil
}
