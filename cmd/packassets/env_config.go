package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without editing the config file.
type envConfig struct {
	ConfigPath     string        // PACKASSETS_CONFIG: config file name or path
	Instance       string        // PACKASSETS_INSTANCE: instance name
	DevelopmentURL string        // PACKASSETS_DEVELOPMENT_URL: development server base URL
	Timeout        time.Duration // PACKASSETS_TIMEOUT: manifest fetch timeout
}

// knownEnvVars lists valid PACKASSETS_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PACKASSETS_CONFIG":          true,
	"PACKASSETS_INSTANCE":        true,
	"PACKASSETS_DEVELOPMENT_URL": true,
	"PACKASSETS_TIMEOUT":         true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid or non-positive timeouts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:     strings.TrimSpace(os.Getenv("PACKASSETS_CONFIG")),
		Instance:       strings.TrimSpace(os.Getenv("PACKASSETS_INSTANCE")),
		DevelopmentURL: strings.TrimSpace(os.Getenv("PACKASSETS_DEVELOPMENT_URL")),
	}

	if timeout := os.Getenv("PACKASSETS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars writes a warning for each unrecognized PACKASSETS_* variable.
// Helps catch typos like PACKASSETS_DEV_URL instead of PACKASSETS_DEVELOPMENT_URL.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "PACKASSETS_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// firstNonEmpty returns the first non-blank value.
// Callers pass values in priority order: flag, environment, config, default.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
