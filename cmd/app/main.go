package main

import (
	"log"

	"HealthyBites-Backend/cmd/config"
	"HealthyBites-Backend/cmd/database/migrate"
	"HealthyBites-Backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	migrate.Migrate(db)
	migrate.Seed(db)

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
