package router

import (
	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// New builds the Gin engine with its middleware, controllers and routes.
// Each engine owns its own metrics registry.
func New(db *gorm.DB) *gin.Engine {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorLogger(), metrics.Handler())

	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db))
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db))
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))

	router.GET("/", controllers.Index)
	router.GET("/health", controllers.HealthCheck)

	restaurants := router.Group("/restaurants")
	{
		restaurants.GET("", restaurantController.GetAllRestaurants)
		restaurants.GET("/:id", restaurantController.GetRestaurantByID)
		restaurants.DELETE("/:id", restaurantController.DeleteRestaurant)
	}
	router.GET("/pizzas", pizzaController.GetAllPizzas)
	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
