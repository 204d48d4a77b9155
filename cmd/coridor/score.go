package main

import (
	"context"
	"fmt"

	"coridor/internal/db"
	"coridor/internal/passport"
	"coridor/internal/store"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var scoreCommand = &cli.Command{
	Name:  "score",
	Usage: "Compute a tenant's private trust score and print it as JSON",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "tenant",
			Aliases:  []string{"t"},
			Usage:    "Tenant profile ID",
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

		service := newPassportService(logger, pool)

		score, err := service.Score(ctx, c.String("tenant"))
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(score, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal trust score: %w", err)
		}

		fmt.Println(string(out))
		return nil
	},
}

func newPassportService(logger *logrus.Logger, pool *pgxpool.Pool) *passport.Service {
	return passport.NewService(
		logger,
		store.NewProfileRepository(pool),
		store.NewHistoryRepository(pool),
		store.NewReviewRepository(pool),
		store.NewSettingsRepository(pool),
		store.NewPropertyRepository(pool),
		store.NewNotificationRepository(pool),
	)
}
