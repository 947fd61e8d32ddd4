package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants lists every restaurant
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID returns a restaurant with its offerings
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its offerings
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants without their offerings
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants()
	if err != nil {
		respondInternalError(ctx, err)
		return
	}

	response := make([]models.RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		response = append(response, r.ToResponse())
	}
	ctx.JSON(http.StatusOK, response)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with the pizzas it offers
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetailResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := restaurantID(ctx)
	if !ok {
		return
	}

	restaurant, err := c.service.GetRestaurantByID(id)
	if errors.Is(err, models.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Restaurant not found"})
		return
	}
	if err != nil {
		respondInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, restaurant.ToDetailResponse())
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every pizza offering it owns
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := restaurantID(ctx)
	if !ok {
		return
	}

	err := c.service.DeleteRestaurant(id)
	if errors.Is(err, models.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Restaurant not found"})
		return
	}
	if err != nil {
		respondInternalError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// restaurantID parses the id path parameter, answering 400 when it is not a positive integer
func restaurantID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid restaurant ID format"})
		return 0, false
	}
	return uint(id), true
}
