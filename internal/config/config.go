package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/violadsouza12/Social/internal/query"
	"github.com/violadsouza12/Social/internal/store"
)

// Config is the persistent application configuration
type Config struct {
	// Where the Item Store is loaded from
	Data DataConfig `json:"data"`

	// Initial dashboard state
	UI UIConfig `json:"ui"`

	// Random Inspiration
	Picker PickerConfig `json:"picker"`

	Logging LoggingConfig `json:"logging"`
}

// DataConfig selects the Item Store
type DataConfig struct {
	DBPath string `json:"db_path,omitempty"` // Empty = built-in demo collection
}

// UIConfig holds the query the dashboard opens with
type UIConfig struct {
	DefaultSort     string `json:"default_sort"`     // "newest" or "popular"
	DefaultCategory string `json:"default_category"` // "All" or a category name
	DefaultPlatform string `json:"default_platform"` // "All" or a platform name
}

// PickerConfig holds Random Inspiration settings
type PickerConfig struct {
	Seed uint64 `json:"seed"` // 0 = seed from the clock
}

// LoggingConfig holds log file settings
type LoggingConfig struct {
	Level string `json:"level"` // debug, info, warn, error
	Dir   string `json:"dir,omitempty"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			DefaultSort:     "newest",
			DefaultCategory: string(query.AllCategories),
			DefaultPlatform: string(query.AllPlatforms),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DataDir returns ~/.socialsaver
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".socialsaver")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.json")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads config from path. A missing file yields defaults filled in
// from the environment.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.AutoPopulateFromEnv()
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.AutoPopulateFromEnv()

	return cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes config to path, creating its directory.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// AutoPopulateFromEnv overrides settings from environment variables
func (c *Config) AutoPopulateFromEnv() {
	if v := os.Getenv("SOCIALSAVER_DB"); v != "" {
		c.Data.DBPath = v
	}
	if v := os.Getenv("SOCIALSAVER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SOCIALSAVER_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Picker.Seed = seed
		}
	}
}

// InitialQuery builds the query the dashboard opens with. Unknown values are
// reported rather than silently matching nothing.
func (c *Config) InitialQuery() (query.Query, error) {
	q := query.Query{
		Category: query.AllCategories,
		Platform: query.AllPlatforms,
	}

	sortMode, err := query.ParseSortMode(c.UI.DefaultSort)
	if err != nil {
		return q, fmt.Errorf("ui.default_sort: %w", err)
	}
	q.Sort = sortMode

	if v := c.UI.DefaultCategory; v != "" && v != string(query.AllCategories) {
		cat, err := store.ParseCategory(v)
		if err != nil {
			return q, fmt.Errorf("ui.default_category: %w", err)
		}
		q.Category = cat
	}

	if v := c.UI.DefaultPlatform; v != "" && v != string(query.AllPlatforms) {
		p, err := store.ParsePlatform(v)
		if err != nil {
			return q, fmt.Errorf("ui.default_platform: %w", err)
		}
		q.Platform = p
	}

	return q, nil
}

// LogDir returns the configured log directory or ~/.socialsaver/logs
func (c *Config) LogDir() string {
	if c.Logging.Dir != "" {
		return c.Logging.Dir
	}
	return filepath.Join(DataDir(), "logs")
}
