package database

import (
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates the restaurants, pizzas and restaurant_pizzas tables
// together with their foreign keys
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	log.Info("Database schema migrated")
	return nil
}
