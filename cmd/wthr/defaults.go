package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wthr/internal/config"
	"wthr/internal/render"
	"wthr/internal/storage"
)

var (
	clearConfigFlag bool
	clearCacheFlag  bool
)

var setCmd = &cobra.Command{
	Use:   "set [location]",
	Short: "Save a default location for future lookups",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			var err error
			name, err = promptLocation(cmd)
			if err != nil {
				return err
			}
		}
		// Load first so existing settings survive the rewrite.
		if _, err := config.Load(); err != nil {
			return err
		}
		if err := config.SaveDefaultLocation(name); err != nil {
			return err
		}
		render.Notice(cmd.OutOrStdout(), fmt.Sprintf("Default location %q saved", name))
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the configured default location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		msg := "No default location set"
		if cfg.DefaultLocation != "" {
			msg = "Default location: " + cfg.DefaultLocation
		}
		render.Notice(cmd.OutOrStdout(), msg)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the config and the location cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// With no flag given, clear both.
		clearAll := !clearConfigFlag && !clearCacheFlag

		var cleared []string
		if clearAll || clearCacheFlag {
			path, err := storage.DefaultCachePath()
			if err != nil {
				return err
			}
			if err := storage.NewFileStore(path).Clear(); err != nil {
				return err
			}
			cleared = append(cleared, "cache")
		}
		if clearAll || clearConfigFlag {
			if _, err := config.Load(); err != nil {
				return err
			}
			if err := config.ClearDefaultLocation(); err != nil {
				return err
			}
			cleared = append(cleared, "config")
		}

		render.Notice(cmd.OutOrStdout(), "Cleared: "+strings.Join(cleared, ", "))
		return nil
	},
}

func init() {
	clearCmd.Flags().BoolVar(&clearConfigFlag, "config", false, "clear only the config")
	clearCmd.Flags().BoolVar(&clearCacheFlag, "cache", false, "clear only the location cache")

	rootCmd.AddCommand(setCmd, getCmd, clearCmd)
}
