package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"coridor/internal/db"
	"coridor/pkg/types"

	"github.com/urfave/cli/v2"
)

var exportCommand = &cli.Command{
	Name:  "export",
	Usage: "Export a tenant passport as JSON or PDF",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "tenant",
			Aliases:  []string{"t"},
			Usage:    "Tenant profile ID",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Export format: json or pdf",
			Value:   "json",
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

		document, err := service.Export(ctx, c.String("tenant"), types.ExportFormat(c.String("format")))
		if err != nil {
			return err
		}

		path := filepath.Join(config.ExportDir, document.Filename)
		if err := os.WriteFile(path, document.Bytes, 0o644); err != nil {
			return fmt.Errorf("write export file: %w", err)
		}

		logger.WithField("path", path).
			WithField("content_type", document.ContentType).
			Info("passport exported")
		return nil
	},
}
