// Package cmd implements the CLI commands for SequelSift using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/EmmanuelEzenwere/SequelSift/config"
	"github.com/EmmanuelEzenwere/SequelSift/logger"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// flagDebug forces debug-level development logging.
	flagDebug bool

	// cfg and log are initialized in Execute before any command runs.
	cfg *config.Config
	log logger.Interface = logger.NewNoOp()
)

var rootCmd = &cobra.Command{
	Use:   "sift",
	Short: "SequelSift — extract company profiles from startup websites",
	Long: `SequelSift analyzes startup websites and assembles one structured company
profile per domain: company name, founders, description, and product
information, exported as JSON, CSV, XLSX, Markdown, or PDF.

Usage:
  sift analyze <domain ...> [flags]`,
}

// Execute loads configuration, builds the logger, and runs the root command.
func Execute() {
	// .env values become visible to viper's env binding.
	_ = godotenv.Load()

	// Parse flags early so --config and --debug apply to config loading.
	_ = rootCmd.ParseFlags(os.Args[1:])

	loaded, err := config.Load(viper.New(), cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg = loaded

	if flagDebug {
		cfg.App.Debug = true
		cfg.Logger.Level = "debug"
		cfg.Logger.Development = true
	}
	log = logger.New(logger.Config{
		Level:       cfg.Logger.Level,
		Encoding:    cfg.Logger.Encoding,
		Development: cfg.Logger.Development,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}
