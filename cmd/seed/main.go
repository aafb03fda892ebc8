package main

import (
	"context"

	"garage/config"
	"garage/di"
	"garage/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	seeder := di.InitializeSeeder()
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed database")
	}

	log.Info().Msg("Seeding completed")
}
