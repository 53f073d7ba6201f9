package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultAPIURL is the checklist API the client talks to when nothing else is configured.
const DefaultAPIURL = "http://94.74.86.174:8080"

// Config holds all runtime configuration for the checklist client.
type Config struct {
	APIURL          string        `env:"CHECKLIST_API_URL" envDefault:"http://94.74.86.174:8080"`
	DBPath          string        `env:"CHECKLIST_DB"`
	APITimeout      time.Duration `env:"CHECKLIST_API_TIMEOUT" envDefault:"15s"`
	ProgressWorkers int           `env:"CHECKLIST_PROGRESS_WORKERS" envDefault:"4"`
	Locale          string        `env:"CHECKLIST_LOCALE" envDefault:"en"`
	ToastTTL        time.Duration `env:"CHECKLIST_TOAST_TTL" envDefault:"3s"`
	LogCalls        bool          `env:"CHECKLIST_LOG_CALLS"`
	LogFile         string        `env:"CHECKLIST_LOG_FILE"`
}

// Default returns a Config with every default applied and no environment read.
func Default() Config {
	return Config{
		APIURL:          DefaultAPIURL,
		APITimeout:      15 * time.Second,
		ProgressWorkers: 4,
		Locale:          "en",
		ToastTTL:        3 * time.Second,
	}
}

// Load reads configuration from the environment and fills derived defaults.
// Non-positive timeouts and worker counts fall back to their defaults, a
// negative toast TTL does too, and zero keeps toasts until replaced. Values
// that do not parse at all are an error.
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	def := Default()

	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	if c.APIURL == "" {
		c.APIURL = def.APIURL
	}
	if c.APITimeout <= 0 {
		c.APITimeout = def.APITimeout
	}
	if c.ProgressWorkers <= 0 {
		c.ProgressWorkers = def.ProgressWorkers
	}
	if c.ToastTTL < 0 {
		c.ToastTTL = def.ToastTTL
	}
	c.Locale = strings.ToLower(strings.TrimSpace(c.Locale))
	if c.Locale == "" {
		c.Locale = def.Locale
	}

	c.DBPath = strings.TrimSpace(c.DBPath)
	if c.DBPath == "" {
		c.DBPath = filepath.Join("~", ".checklist", "state.db")
	}
	path, err := expandHome(c.DBPath)
	if err != nil {
		return err
	}
	c.DBPath = path
	return nil
}

// expandHome replaces a leading "~" or "~/" with the user's home directory.
// Other paths, including "~user" forms, are returned unchanged.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
