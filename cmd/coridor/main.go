package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "coridor",
		Usage: "Rental marketplace lease & tenant-trust engine",
		Commands: []*cli.Command{
			leaseCommand,
			scoreCommand,
			exportCommand,
			seedCommand,
			nanoidCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
