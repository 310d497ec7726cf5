package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/saltyorg/stockroom/internal/config"
	"github.com/saltyorg/stockroom/internal/console"
	"github.com/saltyorg/stockroom/internal/database"
	"github.com/saltyorg/stockroom/internal/inventory"
	"github.com/saltyorg/stockroom/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// options holds the global CLI flags.
type options struct {
	dbPath    string
	envFile   string
	logFile   string
	verbosity int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "stockroom",
		Short: "Stockroom - console inventory tracker",
		Long: `Stockroom keeps a local inventory of items (ID, name, quantity) in an embedded SQLite database.
Run without a subcommand for the interactive menu.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnv(opts.envFile); err != nil {
				return err
			}
			logging.Init(opts.verbosity)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.dbPath, "db", "d", config.DefaultDBPath, "SQLite database path (or set DB_PATH env var)")
	flags.StringVar(&opts.envFile, "env-file", "", "Load environment variables from this file (default ./.env when present)")
	flags.StringVar(&opts.logFile, "log-file", "", "Log file path (default: stockroom.log next to the database, or LOG_FILE env var)")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")

	rootCmd.AddCommand(
		newAddCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
		newShowCmd(opts),
		newListCmd(opts),
		newSettingsCmd(opts),
		newMaintenanceCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Show version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "stockroom %s (commit: %s, built: %s)\n", version, commit, date)
			},
		},
	)

	return rootCmd
}

// openDatabase opens and migrates the database, then switches logging over to
// the settings stored in it.
func openDatabase(opts *options) (*database.Manager, error) {
	dbPath := config.ResolveDBPath(opts.dbPath)

	db, err := database.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	logFile := config.ResolveLogFile(opts.logFile)
	if logFile == "" {
		logFile = logging.FilePathForDB(dbPath)
	}
	logging.Apply(logging.LevelForVerbosity(opts.verbosity), config.NewLoader(db), logFile)

	log.Debug().Str("database", dbPath).Str("log_file", logFile).Msg("Database ready")
	return db, nil
}

// withService opens the database for the duration of fn.
func withService(opts *options, fn func(*inventory.Service) error) error {
	db, err := openDatabase(opts)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(inventory.NewService(db))
}

func runConsole(cmd *cobra.Command, opts *options) error {
	db, err := openDatabase(opts)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Debug().Str("version", version).Str("database", db.Path()).Msg("Starting Stockroom")

	ctx := cmd.Context()
	c := console.New(inventory.NewService(db), cmd.InOrStdin(), cmd.OutOrStdout())

	// Reading the terminal cannot be interrupted, so a signal abandons the
	// reader instead of waiting for the next line.
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	select {
	case err = <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}

	if errors.Is(err, context.Canceled) {
		log.Info().Msg("Received shutdown signal")
		return nil
	}
	if err != nil {
		return err
	}

	log.Debug().Msg("Stockroom stopped")
	return nil
}
