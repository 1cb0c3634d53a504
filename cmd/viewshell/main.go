package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	startPath  string
	configPath string
	noDB       bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "viewshell",
	Short: "Terminal page shell with a Home, X and Y view",
	Long: `viewshell renders a header, a three-link navigation list and the view
selected by the current path. Unknown paths show the Home view.

Run without arguments to start the interactive shell.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configPath != "" {
			_ = os.Setenv("VIEWSHELL_CONFIG", configPath)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/viewshell/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVar(&startPath, "path", "", "path to open instead of the saved one")
	rootCmd.Flags().BoolVar(&noDB, "no-db", false, "keep the location in memory only")

	rootCmd.AddCommand(routesCmd, resolveCmd, keysCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
