// Package config loads application settings from an optional YAML file,
// a .env file and the process environment.
// File: config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"

	defaultSessionSecret = "change-me"
)

type AppConfig struct {
	Name          string `yaml:"name"`
	Environment   string `yaml:"environment"`
	Port          int    `yaml:"port"`
	BaseURL       string `yaml:"base_url"`
	SessionSecret string `yaml:"-"` // Loaded from environment
	LogDir        string `yaml:"log_dir"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type FeaturesConfig struct {
	EnableMetrics bool `yaml:"enable_metrics"`
	EnableTracing bool `yaml:"enable_tracing"`
}

// BootstrapConfig seeds an admin account into an empty document.
type BootstrapConfig struct {
	AdminUsername string `yaml:"-"`
	AdminPassword string `yaml:"-"`
}

type Config struct {
	App       AppConfig       `yaml:"app"`
	Storage   StorageConfig   `yaml:"storage"`
	Features  FeaturesConfig  `yaml:"features"`
	Bootstrap BootstrapConfig `yaml:"-"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:          "league-table",
			Environment:   "development",
			Port:          8080,
			BaseURL:       "http://localhost:8080",
			SessionSecret: defaultSessionSecret,
		},
		Storage: StorageConfig{
			Driver: DriverFile,
			Path:   "db.json",
		},
	}
}

// Load builds the configuration. configPath may be empty or point to a
// missing file, in which case only defaults and the environment apply.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := Default()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("error parsing config file: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := lookup("APP_ENV"); ok {
		cfg.App.Environment = v
	}
	if v, ok := lookup("PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.App.Port = port
		}
	}
	if v, ok := lookup("BASE_URL"); ok {
		cfg.App.BaseURL = strings.TrimRight(v, "/")
	}
	if v, ok := lookup("SESSION_SECRET"); ok {
		cfg.App.SessionSecret = v
	}
	if v, ok := lookup("LOG_DIR"); ok {
		cfg.App.LogDir = v
	}
	if v, ok := lookup("STORAGE_DRIVER"); ok {
		cfg.Storage.Driver = strings.ToLower(v)
	}
	if v, ok := lookup("STORAGE_PATH"); ok {
		cfg.Storage.Path = v
	}
	if v, ok := lookup("METRICS_ENABLED"); ok {
		cfg.Features.EnableMetrics, _ = strconv.ParseBool(v)
	}
	if v, ok := lookup("TRACING_ENABLED"); ok {
		cfg.Features.EnableTracing, _ = strconv.ParseBool(v)
	}
	cfg.Bootstrap.AdminUsername = os.Getenv("ADMIN_USERNAME")
	cfg.Bootstrap.AdminPassword = os.Getenv("ADMIN_PASSWORD")
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("app port %d is out of range", c.App.Port)
	}
	switch c.Storage.Driver {
	case DriverFile, DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage path is required for %s", c.Storage.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported storage driver: %s", c.Storage.Driver)
	}
	if c.IsProduction() && (c.App.SessionSecret == "" || c.App.SessionSecret == defaultSessionSecret) {
		return errors.New("SESSION_SECRET must be set in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.App.Port)
}
