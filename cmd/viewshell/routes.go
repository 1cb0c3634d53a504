package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/viewshell/internal/config"
	"github.com/jask/viewshell/internal/logging"
	"github.com/jask/viewshell/internal/router"
	"github.com/jask/viewshell/internal/tui"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table in menu order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.Default()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LABEL\tPATH\tVIEW")
		for _, rt := range r.Routes() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", rt.Label, rt.Path, rt.View)
		}
		return w.Flush()
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [path]...",
	Short: "Print the view each path resolves to",
	Long: `Resolves every argument against the route table. Paths that match no
route resolve to the home view; this is not an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logger, err := logging.NewConsole(level)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		r := router.Default()
		for _, p := range args {
			view := r.Resolve(p)
			fallback := usesFallback(r, p)
			logger.Debug("resolve", zap.String("path", p), zap.String("view", string(view)), zap.Bool("fallback", fallback))
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", p, view)
		}
		return nil
	},
}

var writeKeys bool

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the effective key bindings",
	Long: `Prints every action with its keys after applying keybindings.toml.
With --write the defaults are written to keybindings.toml as a starting point.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.Default()
		if writeKeys {
			path := filepath.Join(config.Dir(), config.KeybindingsFile)
			if err := config.WriteKeybindings(path, exportBindings(tui.DefaultKeyBindings(linkLabels(r)))); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		}
		bindings, err := keyBindings(r)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ACTION\tKEYS\tSCOPES")
		for _, b := range bindings {
			fmt.Fprintf(w, "%s\t%s\t%s\n", b.Action, strings.Join(b.Keys, ", "), strings.Join(b.Scopes, ", "))
		}
		return w.Flush()
	},
}

func init() {
	keysCmd.Flags().BoolVar(&writeKeys, "write", false, "write the default bindings to keybindings.toml")
}

// usesFallback reports whether path matched no route and resolved to the
// fallback view.
func usesFallback(r *router.Router, path string) bool {
	_, ok := r.Match(path)
	return !ok
}

// exportBindings collapses bindings to one entry per action.
func exportBindings(bindings []tui.KeyBinding) []config.Keybinding {
	out := make([]config.Keybinding, 0, len(bindings))
	seen := map[string]bool{}
	for _, b := range bindings {
		if seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		out = append(out, config.Keybinding{Action: b.Action, Keys: append([]string(nil), b.Keys...)})
	}
	return out
}
