package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizza offerings
type RestaurantPizzaController interface {
	// CreateRestaurantPizza adds a pizza to a restaurant at a price
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// RestaurantPizzaRequest is the body of POST /restaurant_pizzas
type RestaurantPizzaRequest struct {
	Price        *int  `json:"price" binding:"required"`
	PizzaID      *uint `json:"pizza_id" binding:"required,min=1"`
	RestaurantID *uint `json:"restaurant_id" binding:"required,min=1"`
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer an existing pizza at an existing restaurant for a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body controllers.RestaurantPizzaRequest true "Offering"
// @Success 201 {object} models.RestaurantPizzaResponse
// @Failure 400 {object} models.ErrorsResponse
// @Failure 404 {object} models.ErrorsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var req RestaurantPizzaRequest
	if messages := bindJSON(ctx, &req); messages != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorsResponse{Errors: messages})
		return
	}

	created, err := c.service.CreateRestaurantPizza(models.RestaurantPizza{
		Price:        *req.Price,
		PizzaID:      *req.PizzaID,
		RestaurantID: *req.RestaurantID,
	})

	var validationErr *models.ValidationError
	var notFoundErr *models.NotFoundError
	switch {
	case errors.As(err, &validationErr):
		ctx.JSON(http.StatusBadRequest, models.ErrorsResponse{Errors: validationErr.Errors})
	case errors.As(err, &notFoundErr):
		ctx.JSON(http.StatusNotFound, models.ErrorsResponse{Errors: notFoundErr.Messages()})
	case err != nil:
		respondInternalError(ctx, err)
	default:
		ctx.JSON(http.StatusCreated, created.ToResponse())
	}
}
