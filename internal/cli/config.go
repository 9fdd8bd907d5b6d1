package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mindweave/mindweave/pkg/pipeline"
)

// Config holds user-level settings loaded from the TOML config file.
// Every field has a sensible default so the file is optional.
type Config struct {
	Strategy string  `toml:"strategy"`
	Theme    string  `toml:"theme"`
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`

	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects the cache backend for layout and artifact results.
type CacheConfig struct {
	// Backend is one of "file" (default), "memory", "redis", "none".
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig holds the connection settings for the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// StoreConfig selects the document store backend for the serve command.
type StoreConfig struct {
	// Backend is one of "memory" (default) or "mongo".
	Backend    string `toml:"backend"`
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig holds HTTP server settings for the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Strategy: pipeline.DefaultStrategy,
		Theme:    "light",
		Width:    pipeline.DefaultWidth,
		Height:   pipeline.DefaultHeight,
		Cache:    CacheConfig{Backend: "file"},
		Store:    StoreConfig{Backend: "memory"},
		Server:   ServerConfig{Addr: ":8080"},
	}
}

// LoadConfig reads the TOML config at path, or the standard location when
// path is empty. A missing file returns the defaults without error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		var err error
		path, err = configPath()
		if err != nil {
			return cfg, nil
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := validateConfig(cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	if err := pipeline.ValidateStrategy(cfg.Strategy); err != nil {
		return err
	}
	if err := pipeline.ValidateTheme(cfg.Theme); err != nil {
		return err
	}
	switch cfg.Cache.Backend {
	case "", "file", "memory", "redis", "none":
	default:
		return fmt.Errorf("invalid cache backend: %q (must be file, memory, redis, or none)", cfg.Cache.Backend)
	}
	switch cfg.Store.Backend {
	case "", "memory", "mongo":
	default:
		return fmt.Errorf("invalid store backend: %q (must be memory or mongo)", cfg.Store.Backend)
	}
	return nil
}

// configPath returns the config file path using XDG standard
// (~/.config/mindweave/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
