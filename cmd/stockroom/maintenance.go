package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/saltyorg/stockroom/internal/database"
)

func newMaintenanceCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maintenance",
		Short: "Database maintenance tasks",
	}

	run := func(name string, fn func(*database.Manager) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase(opts)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := fn(db); err != nil {
				return err
			}
			log.Info().Str("task", name).Str("database", db.Path()).Msg("Maintenance task complete")
			return nil
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "optimize",
			Short: "Refresh query planner statistics",
			Args:  cobra.NoArgs,
			RunE:  run("optimize", (*database.Manager).Optimize),
		},
		&cobra.Command{
			Use:   "vacuum",
			Short: "Rebuild the database file to reclaim space",
			Args:  cobra.NoArgs,
			RunE:  run("vacuum", (*database.Manager).Vacuum),
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show item count and schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				db, err := openDatabase(opts)
				if err != nil {
					return err
				}
				defer db.Close()

				count, err := db.ItemCount()
				if err != nil {
					return err
				}
				schemaVersion, err := db.SchemaVersion()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "database: %s\nitems: %d\nschema version: %d\n", db.Path(), count, schemaVersion)
				return nil
			},
		},
	)

	return cmd
}
