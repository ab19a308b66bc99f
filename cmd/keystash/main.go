// keystash persists key XML documents into a hierarchical parameter store.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/keystash/keystash/internal/config"
	"github.com/keystash/keystash/internal/keyring"
	"github.com/keystash/keystash/internal/metrics"
	"github.com/keystash/keystash/internal/paramstore"
)

// Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
)

var (
	configPath string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "keystash",
		Short:         "Key XML repository over a hierarchical parameter store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "keystash.yaml", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newPutCmd())
	rootCmd.AddCommand(newPurgeCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func setupLogging(logLevel string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// buildRepository wires config, client and metrics into a repository.
func buildRepository() (*keyring.Repository, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	policy, err := cfg.Policy.PersistPolicy()
	if err != nil {
		return nil, err
	}

	client := paramstore.NewClient(cfg.Endpoint, cfg.AuthToken, Version)
	return keyring.New(cfg.Prefix, policy, client, metrics.InitRepoMetrics(metrics.Registry))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("keystash %s (%s)\n", Version, Commit)
		},
	}
}
