// ABOUTME: Application configuration for notebook.
// ABOUTME: Handles XDG config/data paths, JSON config file and env overrides.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendCharm  = "charm"
	// BackendMemory keeps notes for the life of the process only.
	BackendMemory = "memory"

	// DefaultSlot is the storage slot holding the whole note collection.
	DefaultSlot = "notes-app-data"
)

// Config holds notebook settings.
type Config struct {
	// Backend selects the store: badger, sqlite, charm or memory.
	Backend string `json:"backend"`

	// DataDir holds local databases.
	DataDir string `json:"data_dir,omitempty"`

	Slot string `json:"slot"`

	// AutosaveDelay is how long an editing session waits after the last edit.
	AutosaveDelay Duration `json:"autosave_delay"`

	TrashExpiryDays int `json:"trash_expiry_days"`

	LogLevel string `json:"log_level"`

	// CharmHost is the charm server used by the charm backend.
	CharmHost string `json:"charm_host,omitempty"`

	// AutoSync syncs the charm backend after every write.
	AutoSync bool `json:"auto_sync"`
}

// Duration marshals as a Go duration string ("1s", "750ms").
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Backend:         BackendBadger,
		DataDir:         DefaultDataDir(),
		Slot:            DefaultSlot,
		AutosaveDelay:   Duration(time.Second),
		TrashExpiryDays: 7,
		LogLevel:        "info",
		AutoSync:        true,
	}
}

// TrashExpiry returns the trash retention window.
func (c *Config) TrashExpiry() time.Duration {
	return time.Duration(c.TrashExpiryDays) * 24 * time.Hour
}

// Validate rejects settings the store layer cannot honor.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendBadger, BackendSQLite, BackendCharm, BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q (want badger, sqlite, charm or memory)", c.Backend)
	}
	if c.Slot == "" {
		return fmt.Errorf("slot must not be empty")
	}
	if c.TrashExpiryDays <= 0 {
		return fmt.Errorf("trash_expiry_days must be positive, got %d", c.TrashExpiryDays)
	}
	if c.AutosaveDelay < 0 {
		return fmt.Errorf("autosave_delay must not be negative")
	}
	return nil
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "notebook")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// DefaultDataDir returns the XDG data directory for notebook.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "notebook")
}

// Load reads the config file, returning defaults if not found.
// Environment overrides are applied last.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads a config file at path and applies environment overrides.
func LoadFrom(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

// readFile reads the config file at path over the defaults.
func readFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // Config path comes from XDG or the user
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("NOTEBOOK_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("NOTEBOOK_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("NOTEBOOK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Save writes configuration to path.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// Update applies fn to the config stored at path and writes it back.
// Environment and flag overrides never reach the file.
func Update(path string, fn func(*Config)) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	fn(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := Save(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}
