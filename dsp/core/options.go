package core

// Config defines the shared sampling settings of the engine.
type Config struct {
	SampleRate float64
	Duration   float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the engine defaults: 1 kHz sampling over 2 seconds.
func DefaultConfig() Config {
	return Config{
		SampleRate: 1000,
		Duration:   2.0,
	}
}

// WithSampleRate sets the sampling rate in Hz. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithDuration sets the signal duration in seconds. Non-positive values are ignored.
func WithDuration(duration float64) Option {
	return func(cfg *Config) {
		if duration > 0 {
			cfg.Duration = duration
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Apply applies options to an existing config in place.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
}
