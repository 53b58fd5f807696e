package main

import (
	"roombook/config"
	"roombook/di"
	"roombook/helper"
	"roombook/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title roombook
// @version 1.0
// @description Room reservation manager: bookings with overlap prevention, recurring series, availability and backups.
// @BasePath /
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.Configure(cfg)

	if err := helper.AutoMigrate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate storage")
	}

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
