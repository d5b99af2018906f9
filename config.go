package syskit

import "fmt"

// Config captures locale detector setup.
type Config struct {
	// Fallback is the locale returned when every source misses. It must
	// normalize; NewConfig stores the canonical form.
	Fallback string

	// Sources is the ordered candidate chain, evaluated lazily until one
	// normalizes.
	Sources []Source

	lookup func(string) string
}

// Option mutates Config during construction.
type Option func(*Config) error

// NewConfig builds Config via supplied options and fills in defaults:
// environment-backed sources and FallbackLocale.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if len(cfg.Sources) == 0 {
		cfg.Sources = EnvSources(cfg.lookup)
	}

	if cfg.Fallback == "" {
		cfg.Fallback = FallbackLocale
	} else {
		normalized, ok := NormalizeLocale(cfg.Fallback)
		if !ok {
			return nil, fmt.Errorf("syskit: fallback locale %q does not normalize", cfg.Fallback)
		}
		cfg.Fallback = normalized
	}

	return cfg, nil
}

// WithFallbackLocale sets the locale returned when every source misses.
// An empty value keeps the default.
func WithFallbackLocale(locale string) Option {
	return func(c *Config) error {
		c.Fallback = locale
		return nil
	}
}

// WithSources appends candidate sources to the chain. Supplying any source
// disables the default environment-backed chain.
func WithSources(sources ...Source) Option {
	return func(c *Config) error {
		c.Sources = append(c.Sources, sources...)
		return nil
	}
}

// WithEnvLookup substitutes the environment accessor used by the default
// sources. A nil lookup keeps the process environment.
func WithEnvLookup(lookup func(string) string) Option {
	return func(c *Config) error {
		c.lookup = lookup
		return nil
	}
}
