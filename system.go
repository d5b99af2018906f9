package syskit

import (
	"os"
	"strings"
)

// FallbackLocale is returned by SystemLocale when no candidate source yields
// a usable locale.
const FallbackLocale = "en-US"

// Source lazily yields a single locale candidate. An empty or unresolvable
// value means "try the next source".
type Source func() string

// localeEnvVars is the POSIX locale environment in precedence order.
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG", "LANGUAGE"}

// EnvSources builds one candidate source per locale environment variable,
// reading through lookup so tests can substitute fixtures. A nil lookup uses
// the process environment.
func EnvSources(lookup func(string) string) []Source {
	if lookup == nil {
		lookup = os.Getenv
	}

	sources := make([]Source, 0, len(localeEnvVars))
	for _, name := range localeEnvVars {
		name := name
		sources = append(sources, func() string {
			return stripEnvLocale(lookup(name))
		})
	}
	return sources
}

// stripEnvLocale reduces an environment locale value to its bare identifier:
// codeset and modifier suffixes are dropped ("en_US.UTF-8@euro" -> "en_US"),
// and for colon-separated priority lists (LANGUAGE) only the first entry
// counts.
func stripEnvLocale(value string) string {
	if idx := strings.IndexByte(value, ':'); idx >= 0 {
		value = value[:idx]
	}
	if idx := strings.IndexByte(value, '.'); idx >= 0 {
		value = value[:idx]
	}
	if idx := strings.IndexByte(value, '@'); idx >= 0 {
		value = value[:idx]
	}
	return value
}

// Detector resolves the effective system locale from an ordered chain of
// candidate sources. Detectors are immutable after construction and safe for
// concurrent use.
type Detector struct {
	sources  []Source
	fallback string
}

// NewDetector builds a Detector via supplied options. Without options it
// reads the process locale environment and falls back to FallbackLocale.
func NewDetector(opts ...Option) (*Detector, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Detector{sources: cfg.Sources, fallback: cfg.Fallback}, nil
}

// SystemLocale returns the first candidate that normalizes successfully.
// When every source misses it returns the configured fallback with
// fellBack == true; the flag is a signal for the caller to surface as a
// warning, never an error.
func (d *Detector) SystemLocale() (locale string, fellBack bool) {
	for _, source := range d.sources {
		if source == nil {
			continue
		}
		if normalized, ok := NormalizeLocale(source()); ok {
			return normalized, false
		}
	}
	return d.fallback, true
}

// SystemLocale resolves the system locale with default settings: the process
// locale environment tried in order, then FallbackLocale.
func SystemLocale() (string, bool) {
	detector, err := NewDetector()
	if err != nil {
		return FallbackLocale, true
	}
	return detector.SystemLocale()
}
