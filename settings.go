package syskit

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings carries tool defaults loaded from an optional YAML file. Zero
// values fall back to the package defaults, so a partial file only overrides
// what it names.
type Settings struct {
	// Locale overrides system locale detection when set.
	Locale string `yaml:"locale"`
	// Fallback is the locale used when detection finds nothing.
	Fallback string `yaml:"fallback"`
	// Precision is the fractional digit count for size formatting.
	Precision int `yaml:"precision"`
	// Algorithm is the default checksum algorithm.
	Algorithm string `yaml:"algorithm"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Fallback:  FallbackLocale,
		Precision: DefaultSizePrecision,
		Algorithm: DefaultAlgorithm,
	}
}

// Validate checks ranges and identifiers. All failures wrap
// ErrInvalidSettings.
func (s Settings) Validate() error {
	if s.Precision < 0 || s.Precision > MaxSizePrecision {
		return fmt.Errorf("%w: precision %d outside [0, %d]", ErrInvalidSettings, s.Precision, MaxSizePrecision)
	}
	if s.Locale != "" {
		if _, ok := NormalizeLocale(s.Locale); !ok {
			return fmt.Errorf("%w: unknown locale %q", ErrInvalidSettings, s.Locale)
		}
	}
	if s.Fallback != "" {
		if _, ok := NormalizeLocale(s.Fallback); !ok {
			return fmt.Errorf("%w: unknown fallback locale %q", ErrInvalidSettings, s.Fallback)
		}
	}
	if s.Algorithm != "" {
		if _, err := newHash(s.Algorithm); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
		}
	}
	return nil
}

// SettingsLoader reads Settings from a YAML file.
type SettingsLoader struct {
	path string
}

// NewSettingsLoader creates a loader for the given path. An empty path loads
// defaults only.
func NewSettingsLoader(path string) *SettingsLoader {
	return &SettingsLoader{path: path}
}

// Load reads and validates the settings file. A missing file is not an
// error; it yields the defaults.
func (l *SettingsLoader) Load() (Settings, error) {
	settings := DefaultSettings()
	if l == nil || l.path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings %s: %w", l.path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}
