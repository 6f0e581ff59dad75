// Package cli provides the command-line interface for bpmlens.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphaelgruber/bpmlens/internal/config"
	"github.com/raphaelgruber/bpmlens/internal/store"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool
	cfgPath string

	// Global config and logger
	cfg        config.Config
	logger     *slog.Logger
	logCleanup func() error

	// Lazy-initialized run store; only commands that persist or list
	// runs connect to the database.
	runStore *store.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bpmlens",
	Short: "BPMN business metadata analyzer",
	Long: `Bpmlens extracts business metadata from BPMN 2.0 process diagrams
and aggregates it into cost, time, and quality views.

Tasks annotated with custom properties (time estimates, hourly rates,
owners, documentation status, tools) are rolled up per department,
owner, status, and tool, and rendered as terminal tables or exportable
markdown, CSV, and JSON reports.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.LoadWithFile(cfgPath)
		if err != nil {
			return err
		}

		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		logger, logCleanup = config.SetupLogger(cfg.LogFile, level)
		slog.SetDefault(logger)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if runStore != nil {
			if err := runStore.Close(context.Background()); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
			}
		}
		if logCleanup != nil {
			_ = logCleanup()
		}
	},
}

// getStore connects to the run database on first use and initializes
// the schema.
func getStore(ctx context.Context) (*store.Client, error) {
	if runStore != nil {
		return runStore, nil
	}

	client, err := store.NewClient(ctx, store.Config{
		URL:       cfg.SurrealDBURL,
		Namespace: cfg.SurrealDBNamespace,
		Database:  cfg.SurrealDBDatabase,
		Username:  cfg.SurrealDBUser,
		Password:  cfg.SurrealDBPass,
		AuthLevel: cfg.SurrealDBAuthLevel,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := client.InitSchema(ctx); err != nil {
		_ = client.Close(ctx)
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	runStore = client
	return runStore, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(qualityCmd)
	rootCmd.AddCommand(runsCmd)
}
