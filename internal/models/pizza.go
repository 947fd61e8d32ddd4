package models

// Pizza represents a pizza that restaurants can offer
type Pizza struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string
	Ingredients string
	// Offerings referencing this pizza are removed with it at the storage level
	RestaurantPizzas []RestaurantPizza `gorm:"constraint:OnDelete:CASCADE"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// PizzaResponse is the JSON mapping of a pizza
type PizzaResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// ToResponse converts the pizza to its JSON mapping
func (p Pizza) ToResponse() PizzaResponse {
	return PizzaResponse{
		ID:          p.ID,
		Name:        p.Name,
		Ingredients: p.Ingredients,
	}
}
