package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-pizza-api/internal/database"
)

func main() {
	// Parse command line flags
	dbURI := flag.String("db", os.Getenv("DB_URI"), "Database connection string (defaults to DB_URI, then "+config.DefaultDatabaseURL+")")
	reset := flag.Bool("reset", false, "Remove every restaurant, pizza and offering before seeding")
	flag.Parse()

	uri := *dbURI
	if uri == "" {
		uri = config.DefaultDatabaseURL
	}

	dbConfig, err := database.ParseDatabaseURL(uri)
	if err != nil {
		log.Fatal("Invalid database URL:", err)
	}
	dbConfig.MaxRetries = 1

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if *reset {
		if err := database.Reset(db); err != nil {
			log.Fatal("Failed to reset database:", err)
		}
		fmt.Println("Database reset")
	}

	empty, err := database.IsEmpty(db)
	if err != nil {
		log.Fatal("Failed to inspect database:", err)
	}
	if !empty {
		fmt.Println("Database already holds restaurants or pizzas, run with -reset to reseed")
		return
	}

	if err := database.Seed(db); err != nil {
		log.Fatal("Failed to seed database:", err)
	}
	fmt.Printf("✓ Database seeded (%s)\n", dbConfig.String())
}
