// Package config holds cwatch preferences and well-known paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all cwatch configuration.
type Config struct {
	SoundEnabled bool   `toml:"sound_enabled"`
	FlashEnabled bool   `toml:"flash_enabled"`
	Muted        bool   `toml:"muted"`
	Volume       string `toml:"volume"` // loud, medium, low

	ClaudeDir   string `toml:"claude_dir,omitempty"`
	SocketPath  string `toml:"socket_path,omitempty"`
	Addr        string `toml:"addr,omitempty"`
	HistoryPath string `toml:"history_path,omitempty"`
	RefreshSecs int    `toml:"refresh_secs"`
}

// volumeLevels maps the named volume setting to a 0-1 level.
var volumeLevels = map[string]float64{
	"loud":   1.0,
	"medium": 0.5,
	"low":    0.2,
}

// VolumeLevel returns the numeric volume for the configured setting,
// defaulting to full volume for unknown names.
func (c Config) VolumeLevel() float64 {
	if v, ok := volumeLevels[c.Volume]; ok {
		return v
	}
	return 1.0
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		SoundEnabled: true,
		FlashEnabled: true,
		Volume:       "loud",
		ClaudeDir:    filepath.Join(home, ".claude"),
		SocketPath:   filepath.Join(os.TempDir(), "cwatch.sock"),
		Addr:         "127.0.0.1:8790",
		HistoryPath:  filepath.Join(CacheDir(), "alerts.db"),
		RefreshSecs:  30,
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cwatch")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cwatch")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "cwatch")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "cwatch")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
