package main

import (
	"arena-scheduler-service/internal/app/config"
	"arena-scheduler-service/internal/app/drivers/database"
	"arena-scheduler-service/internal/app/drivers/logger"
	"arena-scheduler-service/internal/migration"
	"os"
)

// Applies every pending migration, or reverts them all with "down".
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(driverConfig, internalConfig)

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	db := database.NewPostgresDB(driverConfig)
	defer db.Close()

	_, err := migration.Run(db, direction, 0, log)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}
}
