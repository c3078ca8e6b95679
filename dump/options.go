package dump

import (
	"time"

	"github.com/rs/zerolog"
)

// Config holds the receiver configuration.
type Config struct {
	// InterFileTimeout bounds reads between frames and frame header
	// fields. It doubles as the end-of-transfer grace period: silence
	// this long after a completed file means the device is done.
	InterFileTimeout time.Duration

	// DataTimeout bounds each read inside a file payload
	DataTimeout time.Duration

	// ReadChunkSize is the maximum bytes requested per payload read
	ReadChunkSize int

	// Integrity validates received payloads; defaults to no validation,
	// matching the wire format, which carries no checksum
	Integrity Integrity

	// Logger receives per-file progress logging
	Logger zerolog.Logger
}

// defaultConfig returns the default configuration. The timeouts mirror the
// observed host tooling: 5s between files, 2s within a payload.
func defaultConfig() Config {
	return Config{
		InterFileTimeout: 5 * time.Second,
		DataTimeout:      2 * time.Second,
		ReadChunkSize:    4096,
		Integrity:        NopIntegrity{},
		Logger:           zerolog.Nop(),
	}
}

// Option is a functional option for configuring the Receiver.
type Option func(*Config)

// WithInterFileTimeout sets the timeout between frames, which is also the
// implicit end-of-transfer grace period.
//
// Example:
//
//	r := dump.New(t, dump.WithInterFileTimeout(10*time.Second))
func WithInterFileTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.InterFileTimeout = d
		}
	}
}

// WithDataTimeout sets the per-read timeout inside a file payload.
//
// Example:
//
//	r := dump.New(t, dump.WithDataTimeout(time.Second))
func WithDataTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.DataTimeout = d
		}
	}
}

// WithReadChunkSize sets the maximum bytes requested per payload read.
func WithReadChunkSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.ReadChunkSize = size
		}
	}
}

// WithIntegrity installs a payload validator for a strict receive mode.
// The framing itself is unchanged; the stock protocol carries no checksum.
func WithIntegrity(i Integrity) Option {
	return func(c *Config) {
		if i != nil {
			c.Integrity = i
		}
	}
}

// WithLogger sets the logger for receive operations.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
