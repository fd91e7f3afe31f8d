package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/markpatch/cmd/markpatch/opts"
	"github.com/walteh/markpatch/pkg/config"
	"github.com/walteh/markpatch/pkg/log"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	targetFile string
	debug      bool
)

// populateRootOpts fills the shared RootOpts after flags are parsed
func populateRootOpts(ctx context.Context, rootOpts *opts.RootOpts) error {
	// Create user logger
	userLogger := log.NewUserLogger(ctx)

	// Load config; an absent file means the baked-in defaults
	cfg, err := config.LoadConfigOrDefault(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	// Override target if provided
	if targetFile != "" {
		cfg.Target = targetFile
	}

	rootOpts.Config = cfg
	rootOpts.UserLogger = userLogger
	return nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".markpatch.yaml", "config file path")
	cmd.PersistentFlags().StringVarP(&targetFile, "file", "f", "", "target file path, overrides the config")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}
