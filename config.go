package randn

import (
	"io"
	"log"
)

// DefaultGrain is the number of draws one chunk task produces.
const DefaultGrain = 4096

// Config controls how an Engine partitions and seeds its work.
type Config struct {
	// Workers bounds the goroutines of the Engine's own pool. Zero shares
	// the process-wide pool.
	Workers int
	// Grain is the chunk size of the fan-out. It also fixes which draws come
	// from which sub-stream, so seeded output depends on it.
	Grain int
	// MaxBytes caps the float64 storage one call may allocate. Zero leaves
	// only the addressable-memory limit.
	MaxBytes uint64
	// Seed makes every call replay the same values when Seeded is set.
	Seed   uint64
	Seeded bool
	// Entropy seeds unseeded calls. Nil means crypto/rand.
	Entropy io.Reader
	// Logger receives one line per call when set.
	Logger *log.Logger
}

// Option is a functional option for configuring an Engine.
type Option func(*Config)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Grain: DefaultGrain,
	}
}

// WithWorkers gives the Engine a private pool of n workers.
func WithWorkers(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Workers = n
		}
	}
}

// WithGrain sets the number of draws per chunk task.
func WithGrain(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Grain = n
		}
	}
}

// WithMemoryLimit caps the bytes of sample storage a single call may request.
func WithMemoryLimit(bytes uint64) Option {
	return func(c *Config) {
		c.MaxBytes = bytes
	}
}

// WithSeed makes the Engine deterministic: equal seeds, grains and shapes
// give equal values regardless of worker count.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
		c.Seeded = true
	}
}

// WithEntropy sets the reader unseeded calls draw their root seed from.
func WithEntropy(r io.Reader) Option {
	return func(c *Config) {
		c.Entropy = r
	}
}

func WithLogger(l *log.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// ApplyOptions applies the given options to the default configuration.
func ApplyOptions(opts ...Option) Config {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return config
}
