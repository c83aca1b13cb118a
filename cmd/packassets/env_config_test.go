package main

// Notes:
// - loadEnvConfig: we test all PACKASSETS_* variables, including invalid and
//   non-positive timeouts (ignored, not errors).
// - warnUnknownEnvVars: we test typo detection and that known vars don't warn.
// - Tests use t.Setenv() which prevents t.Parallel() at parent level.

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("PACKASSETS_CONFIG", "/etc/site.yaml")
		t.Setenv("PACKASSETS_INSTANCE", " child ")
		t.Setenv("PACKASSETS_DEVELOPMENT_URL", "https://localhost:4400")
		t.Setenv("PACKASSETS_TIMEOUT", "2s")

		cfg := loadEnvConfig()

		if cfg.ConfigPath != "/etc/site.yaml" {
			t.Errorf("ConfigPath = %q", cfg.ConfigPath)
		}
		if cfg.Instance != "child" {
			t.Errorf("Instance = %q, want trimmed child", cfg.Instance)
		}
		if cfg.DevelopmentURL != "https://localhost:4400" {
			t.Errorf("DevelopmentURL = %q", cfg.DevelopmentURL)
		}
		if cfg.Timeout != 2*time.Second {
			t.Errorf("Timeout = %v, want 2s", cfg.Timeout)
		}
	})

	for _, value := range []string{"soon", "-1s", "0"} {
		t.Run("ignored timeout "+value, func(t *testing.T) {
			t.Setenv("PACKASSETS_TIMEOUT", value)
			if got := loadEnvConfig().Timeout; got != 0 {
				t.Errorf("Timeout = %v, want 0", got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("PACKASSETS_DEV_URL", "https://localhost")
	t.Setenv("PACKASSETS_INSTANCE", "theme")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	if !strings.Contains(buf.String(), "PACKASSETS_DEV_URL") {
		t.Errorf("expected warning for PACKASSETS_DEV_URL, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "PACKASSETS_INSTANCE") {
		t.Errorf("known variable reported as unknown: %q", buf.String())
	}
}

// ---------------------------------------------------------------------------
// TestFirstNonEmpty - Precedence helper
// ---------------------------------------------------------------------------

func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"first wins", []string{"flag", "env", "config"}, "flag"},
		{"skips blank", []string{"", "  ", "config"}, "config"},
		{"trims", []string{" env "}, "env"},
		{"none", []string{"", ""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := firstNonEmpty(tt.values...); got != tt.want {
				t.Errorf("firstNonEmpty(%q) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}
