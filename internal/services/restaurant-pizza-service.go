package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantPizzaService provides methods to manage restaurant pizza offerings
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates and stores a new offering. The returned
	// offering has its restaurant and pizza attached.
	CreateRestaurantPizza(rp models.RestaurantPizza) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(rp models.RestaurantPizza) (models.RestaurantPizza, error) {
	if err := models.ValidatePrice(rp.Price); err != nil {
		return models.RestaurantPizza{}, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var missing []string

		var pizza models.Pizza
		if err := tx.First(&pizza, rp.PizzaID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("lookup pizza %d: %w", rp.PizzaID, err)
			}
			missing = append(missing, "Pizza")
		}

		var restaurant models.Restaurant
		if err := tx.First(&restaurant, rp.RestaurantID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("lookup restaurant %d: %w", rp.RestaurantID, err)
			}
			missing = append(missing, "Restaurant")
		}

		if len(missing) > 0 {
			return models.NewNotFoundError(missing...)
		}

		rp.Pizza, rp.Restaurant = nil, nil
		if err := tx.Omit(clause.Associations).Create(&rp).Error; err != nil {
			return fmt.Errorf("create restaurant pizza: %w", err)
		}
		rp.Pizza, rp.Restaurant = &pizza, &restaurant
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}
	return rp, nil
}
