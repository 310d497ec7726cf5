package main

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saltyorg/stockroom/internal/logging"
)

// settingKeys lists the keys the settings command accepts.
var settingKeys = []string{
	logging.KeyLevel,
	logging.KeyMaxSizeMB,
	logging.KeyMaxBackups,
	logging.KeyMaxAgeDays,
	logging.KeyCompress,
}

func checkSettingKey(key string) error {
	if !slices.Contains(settingKeys, key) {
		return fmt.Errorf("unknown setting %q (valid: %s)", key, strings.Join(settingKeys, ", "))
	}
	return nil
}

func newSettingsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Manage stored settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				db, err := openDatabase(opts)
				if err != nil {
					return err
				}
				defer db.Close()

				settings, err := db.GetAllSettings()
				if err != nil {
					return err
				}
				keys := make([]string, 0, len(settings))
				for k := range settings {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, settings[k])
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print a stored setting",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := checkSettingKey(args[0]); err != nil {
					return err
				}
				db, err := openDatabase(opts)
				if err != nil {
					return err
				}
				defer db.Close()

				val, err := db.GetSetting(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), val)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Store a setting",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := checkSettingKey(args[0]); err != nil {
					return err
				}
				db, err := openDatabase(opts)
				if err != nil {
					return err
				}
				defer db.Close()

				return db.SetSetting(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "unset <key>",
			Short: "Remove a stored setting",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := checkSettingKey(args[0]); err != nil {
					return err
				}
				db, err := openDatabase(opts)
				if err != nil {
					return err
				}
				defer db.Close()

				return db.DeleteSetting(args[0])
			},
		},
	)

	return cmd
}
