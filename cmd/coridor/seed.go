package main

import (
	"context"
	"fmt"

	"coridor/internal/db"
	"coridor/internal/seed"
	"coridor/internal/store"

	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with demo data",
	Action: func(c *cli.Context) error {
		config, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := newLogger(config)

		ctx := context.Background()

		pool, err := db.Connect(ctx, config)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logger.Info("connected to database")

		profileRepo := store.NewProfileRepository(pool)
		propertyRepo := store.NewPropertyRepository(pool)
		applicationRepo := store.NewApplicationRepository(pool, propertyRepo)
		service := newPassportService(logger, pool)

		return seed.Demo(ctx, logger, profileRepo, propertyRepo, applicationRepo, service)
	},
}
