package models

import "fmt"

const (
	// MinPrice is the lowest price a restaurant can charge for a pizza
	MinPrice = 1
	// MaxPrice is the highest price a restaurant can charge for a pizza
	MaxPrice = 30
)

// RestaurantPizza is a restaurant's offering of a pizza at a given price.
// The same pizza may be offered more than once by the same restaurant.
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey"`
	Price        int  `gorm:"not null"`
	RestaurantID uint `gorm:"not null;index"`
	PizzaID      uint `gorm:"not null;index"`
	Restaurant   *Restaurant
	Pizza        *Pizza
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// RestaurantPizzaResponse is the JSON mapping of an offering. The nested
// restaurant uses its default mapping so the structure never recurses.
type RestaurantPizzaResponse struct {
	ID           uint               `json:"id"`
	Price        int                `json:"price"`
	PizzaID      uint               `json:"pizza_id"`
	RestaurantID uint               `json:"restaurant_id"`
	Pizza        PizzaResponse      `json:"pizza"`
	Restaurant   RestaurantResponse `json:"restaurant"`
}

// ToResponse converts the offering to its JSON mapping
func (rp RestaurantPizza) ToResponse() RestaurantPizzaResponse {
	resp := RestaurantPizzaResponse{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
	}
	if rp.Pizza != nil {
		resp.Pizza = rp.Pizza.ToResponse()
	}
	if rp.Restaurant != nil {
		resp.Restaurant = rp.Restaurant.ToResponse()
	}
	return resp
}

// ValidatePrice checks the price of an offering before it is persisted
func ValidatePrice(price int) error {
	if price < MinPrice || price > MaxPrice {
		return NewValidationError(fmt.Sprintf("price must be between %d and %d", MinPrice, MaxPrice))
	}
	return nil
}
