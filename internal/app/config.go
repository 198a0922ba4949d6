package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"nycschools/internal/remote"
	"nycschools/internal/render"
)

// Store kinds accepted by Config.Store.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// Home is the state directory, e.g. $HOME/.nycschools.
	Home string `env:"NYCSCHOOLS_HOME"`
	// BaseURL is the school data service root.
	BaseURL  string `env:"NYCSCHOOLS_BASE_URL"`
	AppToken string `env:"NYCSCHOOLS_APP_TOKEN"`
	// RateLimit caps requests per second; 0 disables it.
	RateLimit float64       `env:"NYCSCHOOLS_RATE_LIMIT"`
	Timeout   time.Duration `env:"NYCSCHOOLS_TIMEOUT" envDefault:"15s"`

	Store     string `env:"NYCSCHOOLS_STORE" envDefault:"file"`
	Output    string `env:"NYCSCHOOLS_OUTPUT" envDefault:"text"`
	LogLevel  string `env:"NYCSCHOOLS_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"NYCSCHOOLS_LOG_FORMAT" envDefault:"text"`

	ListDelay   time.Duration `env:"NYCSCHOOLS_LIST_DELAY"`
	ScoresDelay time.Duration `env:"NYCSCHOOLS_SCORES_DELAY"`
	MetricsAddr string        `env:"NYCSCHOOLS_METRICS_ADDR"`
}

// LoadConfig loads envFile into the process environment when it exists and
// then parses Config from the environment. Variables already set win over
// the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DefaultHome returns $HOME/.nycschools.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".nycschools"), nil
}

// withDefaults fills the fields an empty Config leaves unset.
func (c Config) withDefaults() (Config, error) {
	if c.Home == "" && c.Store != StoreMemory {
		home, err := DefaultHome()
		if err != nil {
			return c, fmt.Errorf("resolve home: %w", err)
		}
		c.Home = home
	}
	if c.BaseURL == "" {
		c.BaseURL = remote.DefaultBaseURL
	}
	if c.Store == "" {
		c.Store = StoreFile
	}
	if c.Output == "" {
		c.Output = string(render.FormatText)
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Store {
	case "", StoreFile, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("unknown store %q (want file, sqlite or memory)", c.Store)
	}
	if c.Output != "" {
		if _, err := render.ParseFormat(c.Output); err != nil {
			return err
		}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative")
	}
	if c.Timeout < 0 || c.ListDelay < 0 || c.ScoresDelay < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}

// ParseLevel parses debug, info, warn or error. Empty means warn.
func ParseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelWarn, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}

// NewLogger returns a slog logger writing to w in the configured format.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(cfg.LogFormat) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", cfg.LogFormat)
	}
}
