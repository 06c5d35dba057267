package main

import (
	"kmc/config"
	"kmc/di"
	"kmc/helper"
	"kmc/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title KMC Guesthouse Admin API
// @version 1.0
// @description Rooms, reservations, meals, vacations and the missionary registry of the mission center.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
