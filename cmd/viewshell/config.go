package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jask/viewshell/internal/config"
)

var writeConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Prints every setting after defaults, config.toml and VIEWSHELL_* overrides
are applied. With --write the result is saved to config.toml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if writeConfig {
			path := os.Getenv("VIEWSHELL_CONFIG")
			if path == "" {
				path = filepath.Join(config.Dir(), "config.toml")
			}
			if err := config.Save(cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, kv := range [][2]string{
			{"database.path", cfg.Database.Path},
			{"database.enabled", fmt.Sprint(cfg.Database.Enabled)},
			{"session.name", cfg.Session.Name},
			{"ui.title", cfg.UI.Title},
			{"ui.start_path", cfg.UI.StartPath},
			{"log.path", cfg.Log.Path},
			{"log.level", cfg.Log.Level},
		} {
			fmt.Fprintf(w, "%s\t%s\n", kv[0], kv[1])
		}
		return w.Flush()
	},
}

func init() {
	configCmd.Flags().BoolVar(&writeConfig, "write", false, "save the effective settings to config.toml")
}
