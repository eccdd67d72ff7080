// Package main is the entry point for the image-converter desktop app and CLI.
package main

import (
	"fmt"
	"os"

	"image-converter/internal/app"
	"image-converter/internal/logger"
	"image-converter/internal/settings"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = app.AppVersion

var log logger.Logger = logger.NoOp{}

var rootCmd = &cobra.Command{
	Use:   "image-converter",
	Short: "Convert images to JPEG by drag and drop",
	Long: `image-converter opens a window that accepts a dropped or picked image and
converts it into the configured output folder and format. The output folder
and format are stored in ~/imageconverter.conf.

Run without arguments to start the GUI, or use the convert subcommand to
convert files from a terminal with the same settings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log = logger.New(os.Stderr, logger.ConfigFromEnv())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		application, err := app.NewApplication(store, log)
		if err != nil {
			return fmt.Errorf("application initialization failed: %w", err)
		}
		return application.Run()
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "settings file (default: ~/imageconverter.conf)")
}

func openStore(cmd *cobra.Command) (*settings.Store, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return settings.Open(path, settings.WithLogger(log))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
