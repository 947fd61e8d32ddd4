package models

// Restaurant represents a restaurant and the pizzas it offers
type Restaurant struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string
	Address          string
	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnDelete:CASCADE"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// RestaurantResponse is the default JSON mapping of a restaurant
type RestaurantResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantDetailResponse extends RestaurantResponse with the restaurant's offerings
type RestaurantDetailResponse struct {
	RestaurantResponse
	RestaurantPizzas []RestaurantPizzaResponse `json:"restaurant_pizzas"`
}

// ToResponse converts the restaurant to its default JSON mapping
func (r Restaurant) ToResponse() RestaurantResponse {
	return RestaurantResponse{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
	}
}

// ToDetailResponse converts the restaurant to its JSON mapping including
// every offering. Offerings without a loaded restaurant are attributed to r.
func (r Restaurant) ToDetailResponse() RestaurantDetailResponse {
	offerings := make([]RestaurantPizzaResponse, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		if rp.Restaurant == nil {
			rp.Restaurant = &r
		}
		offerings = append(offerings, rp.ToResponse())
	}
	return RestaurantDetailResponse{
		RestaurantResponse: r.ToResponse(),
		RestaurantPizzas:   offerings,
	}
}
