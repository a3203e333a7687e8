package config

import "time"

// Config holds server configuration values.
type Config struct {
	TCPAddr           string        `mapstructure:"tcp_addr" yaml:"tcp_addr"`
	HTTPAddr          string        `mapstructure:"http_addr" yaml:"http_addr"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	EventBuffer       int           `mapstructure:"event_buffer" yaml:"event_buffer"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		TCPAddr:           ":6667",
		HTTPAddr:          ":8080",
		LogLevel:          "info",
		EventBuffer:       32,
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.TCPAddr != "" {
		c.TCPAddr = other.TCPAddr
	}
	if other.HTTPAddr != "" {
		c.HTTPAddr = other.HTTPAddr
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.EventBuffer != 0 {
		c.EventBuffer = other.EventBuffer
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
}
