package main

import (
	"context"

	"garage/config"
	"garage/di"
	"garage/helper"
	"garage/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	if cfg.DB.Postgres.SeedOnStartup {
		seeder := di.InitializeSeeder()
		if err := seeder.Run(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed database")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
