package gate

import "log/slog"

// Config holds gate configuration.
type Config struct {
	Logger *slog.Logger
	UTC    bool
}

// Option configures a gate.
type Option interface {
	ApplyGate(*Config)
}

type optionFunc func(*Config)

func (f optionFunc) ApplyGate(c *Config) { f(c) }

// WithLogger sets the logger used to report skipped runs.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	})
}

// WithUTC evaluates working hours in UTC instead of time.Local.
func WithUTC(enabled bool) Option {
	return optionFunc(func(c *Config) {
		c.UTC = enabled
	})
}

func newConfig(opts []Option) Config {
	c := Config{Logger: slog.Default()}
	for _, opt := range opts {
		opt.ApplyGate(&c)
	}
	return c
}
