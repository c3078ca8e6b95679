package device

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ToffeeStudio/go-module/protocol"
)

// Config holds the client configuration.
type Config struct {
	// Profile is the capability profile of the connected firmware
	Profile *protocol.Profile

	// Logger receives exchange-level debug logging
	Logger zerolog.Logger

	// SettleDelay overrides the profile's post-trigger settle delay.
	// Zero means use the profile's value.
	SettleDelay time.Duration
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Profile: protocol.ProfileCDC,
		Logger:  zerolog.Nop(),
	}
}

// Option is a functional option for configuring the Client.
type Option func(*Config)

// WithProfile selects the capability profile of the connected firmware.
//
// Example:
//
//	c := device.New(t, device.WithProfile(protocol.ProfileClassic))
func WithProfile(p *protocol.Profile) Option {
	return func(c *Config) {
		if p != nil {
			c.Profile = p
		}
	}
}

// WithLogger sets the logger for client operations.
//
// Example:
//
//	c := device.New(t, device.WithLogger(log.With().Str("dev", path).Logger()))
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithSettleDelay overrides how long TriggerDump waits after sending the
// dump command before the CDC interface is assumed ready.
//
// Example:
//
//	c := device.New(t, device.WithSettleDelay(time.Second))
func WithSettleDelay(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.SettleDelay = d
		}
	}
}
