package main

import (
	"context"
	"fmt"

	"coridor/internal/db"
	"coridor/internal/lease"
	"coridor/internal/store"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v2"
)

var leaseCommand = &cli.Command{
	Name:  "lease",
	Usage: "Derive the lease configuration for an application and print it as JSON",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "application",
			Aliases:  []string{"a"},
			Usage:    "Lease application ID",
			Required: true,
		},
	},
	Action: func(c *cli.Context) error {
		config, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(config)

		ctx := context.Background()
		pool, err := db.Connect(ctx, config)
		if err != nil {
			return err
		}
		defer pool.Close()

		propertyRepo := store.NewPropertyRepository(pool)
		applicationRepo := store.NewApplicationRepository(pool, propertyRepo)

		service := lease.NewService(logger, applicationRepo)

		leaseConfig, err := service.Generate(ctx, c.String("application"))
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(leaseConfig, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal lease config: %w", err)
		}

		fmt.Println(string(out))
		return nil
	},
}
