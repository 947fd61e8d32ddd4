package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/franciscosanchezn/gin-restaurant-pizza-api/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title Restaurant Pizza API
// @version 1.0
// @description Restaurants, pizzas and the pizzas each restaurant offers
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger
	setUpLogger(configuration)

	// Initialize database connection
	db := setupDatabase(configuration)

	if configuration.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.New(db)

	serve(configuration, engine)
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter. LOG_LEVEL wins when it
// parses, otherwise the level follows the environment
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})

	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		switch conf.Environment {
		case "development":
			level = log.DebugLevel
		case "production":
			level = log.ErrorLevel
		default:
			level = log.InfoLevel
		}
	}
	log.SetLevel(level)
	database.SetLogLevel(level)
	middleware.SetLogLevel(level)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the store selected by DB_URI, migrates the schema and
// seeds it when empty
func setupDatabase(conf *config.Config) *gorm.DB {
	dbConfig, err := database.ParseDatabaseURL(conf.DatabaseURL)
	checkPanicErr(err)
	dbConfig.MaxRetries = conf.DBMaxRetries

	db, err := database.InitDatabase(dbConfig)
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))

	// Create only if is empty
	empty, err := database.IsEmpty(db)
	checkPanicErr(err)
	if empty {
		log.Info("Database is empty, seeding initial data")
		checkPanicErr(database.Seed(db))
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// serve runs the HTTP server until SIGINT or SIGTERM, then drains in-flight requests
func serve(conf *config.Config, handler http.Handler) {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%v:%d", conf.Host, conf.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
}
