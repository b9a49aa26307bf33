// Package main implements the main entry point for the CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := retroapp.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			if usageErr.Error() != "" {
				logger.Error(usageErr.Error())
			}
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts)
	app.PrintBanner(logger, opts, version, commit, date)

	if err := app.Run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}
