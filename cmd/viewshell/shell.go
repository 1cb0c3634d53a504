package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/viewshell/internal/config"
	"github.com/jask/viewshell/internal/database"
	"github.com/jask/viewshell/internal/host"
	"github.com/jask/viewshell/internal/logging"
	"github.com/jask/viewshell/internal/router"
	"github.com/jask/viewshell/internal/tui"
)

func runShell(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.NewFile(cfg.Log.Path, level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	r := router.Default()

	var store *host.Store
	if cfg.Database.Enabled && !noDB {
		db, err := openDatabase(cfg.Database.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		store, err = host.OpenStore(ctx, db, cfg.Session.Name, router.HomePath)
		if err != nil {
			return err
		}
	}

	loc := host.NewLocation(ctx, r.Resolve, store, logger)
	r.WithHost(loc)

	override := startPath
	if override == "" {
		override = cfg.UI.StartPath
	}
	r.Sync(loc.Start(override))
	logger.Info("shell start",
		zap.String("path", r.Path()),
		zap.String("view", string(r.Current())),
		zap.Bool("persistent", store != nil),
		zap.String("session", cfg.Session.Name),
	)

	bindings, err := keyBindings(r)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(tui.Options{
		Title:    cfg.UI.Title,
		Router:   r,
		Location: loc,
		Keys:     tui.NewKeyRegistry(bindings),
		Logger:   logger,
	}), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error("shell exited", zap.Error(err))
		return err
	}
	logger.Info("shell stop", zap.String("path", r.Path()))
	return nil
}

func openDatabase(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}

func linkLabels(r *router.Router) []string {
	var out []string
	for _, l := range r.Links() {
		out = append(out, l.Label)
	}
	return out
}

func keyBindings(r *router.Router) ([]tui.KeyBinding, error) {
	defaults := tui.DefaultKeyBindings(linkLabels(r))
	overrides, err := config.LoadKeybindings(tui.Actions(defaults))
	if err != nil {
		return nil, fmt.Errorf("keybindings: %w", err)
	}
	return tui.ApplyActionKeybindings(defaults, overrides), nil
}
