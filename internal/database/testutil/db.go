// Package testutil provides a migrated in-memory store for tests.
package testutil

import (
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB opens a migrated in-memory SQLite database that is closed when t finishes
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxRetries: 1})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateRestaurant inserts a restaurant directly into the store
func CreateRestaurant(t testing.TB, db *gorm.DB, name, address string) models.Restaurant {
	t.Helper()
	restaurant := models.Restaurant{Name: name, Address: address}
	require.NoError(t, db.Create(&restaurant).Error)
	return restaurant
}

// CreatePizza inserts a pizza directly into the store
func CreatePizza(t testing.TB, db *gorm.DB, name, ingredients string) models.Pizza {
	t.Helper()
	pizza := models.Pizza{Name: name, Ingredients: ingredients}
	require.NoError(t, db.Create(&pizza).Error)
	return pizza
}

// CreateRestaurantPizza inserts an offering directly into the store
func CreateRestaurantPizza(t testing.TB, db *gorm.DB, restaurantID, pizzaID uint, price int) models.RestaurantPizza {
	t.Helper()
	rp := models.RestaurantPizza{RestaurantID: restaurantID, PizzaID: pizzaID, Price: price}
	require.NoError(t, db.Create(&rp).Error)
	return rp
}

// CountRestaurantPizzas returns the number of stored offerings
func CountRestaurantPizzas(t testing.TB, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	return count
}
