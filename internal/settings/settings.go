// Package settings persists the two user preferences the app exposes:
// dark mode and the list font size. Preferences live in a YAML file
// separate from the task data and fail soft in both directions, so a
// missing or unreadable file never blocks startup.
package settings

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Font size bounds. Values outside this range are clamped, never rejected.
const (
	MinFontSize     = 10
	MaxFontSize     = 32
	DefaultFontSize = 16
)

// Settings holds the persisted user preferences.
type Settings struct {
	DarkMode bool `yaml:"darkMode" json:"darkMode"`
	FontSize int  `yaml:"fontSize" json:"fontSize"`
}

// Default returns the out-of-the-box preferences.
func Default() Settings {
	return Settings{
		DarkMode: false,
		FontSize: DefaultFontSize,
	}
}

// Clamp forces FontSize back into the supported range.
func (s *Settings) Clamp() {
	if s.FontSize < MinFontSize {
		s.FontSize = MinFontSize
	}
	if s.FontSize > MaxFontSize {
		s.FontSize = MaxFontSize
	}
}

// DefaultPath returns the conventional settings location, honoring
// XDG_CONFIG_HOME and falling back to ~/.config.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "slate", "settings.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "slate", "settings.yaml"), nil
}

// Load reads preferences from path. A missing or undecodable file is
// not an error: the defaults come back and a warning is logged.
func Load(path string) Settings {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read settings, using defaults", "path", path, "error", err)
		}
		return cfg
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		slog.Warn("failed to decode settings, using defaults", "path", path, "error", err)
		return Default()
	}

	cfg.Clamp()
	return cfg
}

// Save writes preferences to path, creating parent directories as needed.
func Save(path string, cfg Settings) error {
	cfg.Clamp()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
