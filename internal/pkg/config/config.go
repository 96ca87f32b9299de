package config

import (
	"io"
	"time"
)

// Config defines the read-only view over the service configuration.
//
// Keys use dotted paths (for example "app.server.http.port"). Missing keys
// resolve to the zero value of the requested type.
type Config interface {
	io.Closer

	// GetBool returns the value associated with key as a bool.
	GetBool(key string) bool

	// GetInt returns the value associated with key as an int.
	GetInt(key string) int

	// GetFloat64 returns the value associated with key as a float64.
	GetFloat64(key string) float64

	// GetString returns the value associated with key as a string.
	GetString(key string) string

	// GetSecond interprets the integer value associated with key as seconds.
	GetSecond(key string) time.Duration

	// GetArray returns the value associated with key split on commas.
	// Empty elements are dropped and every element is trimmed.
	GetArray(key string) []string
}
