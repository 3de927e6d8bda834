// This file contains environment variable utilities for configuration
// override.

package config

import "os"

// EnvPrefix prefixes every environment variable read by the library.
const EnvPrefix = "TRACEMEM_"

// Config carries the library-level settings resolved at initialization.
type Config struct {
	// Source selects the measurement source: "rss" (default), "heap" or
	// "peak".
	Source string
	// LogLevel controls the internal logger: "disabled" (default), "debug",
	// "info", "warn" or "error".
	LogLevel string
}

// FromEnv resolves the configuration from TRACEMEM_* environment variables,
// falling back to defaults.
func FromEnv() Config {
	return Config{
		Source:   getEnvString("SOURCE", "rss"),
		LogLevel: getEnvString("LOG_LEVEL", "disabled"),
	}
}

// getEnvString returns the value of the environment variable with the given
// key (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}
