package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Session  SessionConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings. When Enabled is false the location
// is kept in memory only.
type DatabaseConfig struct {
	Path    string
	Enabled bool
}

// SessionConfig names the persisted location to resume.
type SessionConfig struct {
	Name string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title     string
	StartPath string `mapstructure:"start_path"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Path  string
	Level string
}

// Dir returns the directory holding config.toml and keybindings.toml.
func Dir() string {
	if p := os.Getenv("VIEWSHELL_CONFIG"); p != "" {
		return filepath.Dir(p)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "viewshell")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "viewshell")
}

func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "viewshell")
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "viewshell")
}

func cacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "viewshell")
	}
	return filepath.Join(os.Getenv("HOME"), ".cache", "viewshell")
}

func newViper() *viper.Viper {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(dataDir(), "viewshell.db"))
	v.SetDefault("database.enabled", true)
	v.SetDefault("session.name", "default")
	v.SetDefault("ui.title", "viewshell")
	v.SetDefault("ui.start_path", "")
	v.SetDefault("log.path", filepath.Join(cacheDir(), "viewshell.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetEnvPrefix("VIEWSHELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from file and env. Env var overrides use prefix
// VIEWSHELL_. A missing config file is not an error; a malformed one is.
func Load() (Config, error) {
	v := newViper()

	if cfgPath := os.Getenv("VIEWSHELL_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

func normalize(c Config) Config {
	c.Session.Name = strings.TrimSpace(c.Session.Name)
	if c.Session.Name == "" {
		c.Session.Name = "default"
	}
	c.UI.StartPath = strings.TrimSpace(c.UI.StartPath)
	if strings.TrimSpace(c.UI.Title) == "" {
		c.UI.Title = "viewshell"
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	return c
}

// Save writes the provided config to path, creating the directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = os.Getenv("VIEWSHELL_CONFIG")
	}
	if path == "" {
		path = filepath.Join(Dir(), "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.enabled", cfg.Database.Enabled)
	v.Set("session.name", cfg.Session.Name)
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.start_path", cfg.UI.StartPath)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
