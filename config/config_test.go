package config

import (
	"log/slog"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	t.Setenv("NODE_ENV", "")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse() error = %v", err)
	}
	cfg.Sanitize()

	if cfg.IsDev {
		t.Errorf("IsDev = true, want false")
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q, want %q", cfg.HTTP.Addr, ":8080")
	}
	if cfg.HTTP.CompressionLevel != 6 {
		t.Errorf("HTTP.CompressionLevel = %d, want 6", cfg.HTTP.CompressionLevel)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("HTTP.ShutdownTimeout = %v, want 10s", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.Query.DefaultPatchID != -1 {
		t.Errorf("Query.DefaultPatchID = %d, want -1", cfg.Query.DefaultPatchID)
	}
	if !cfg.Query.DefaultExcludeMirrors {
		t.Errorf("Query.DefaultExcludeMirrors = false, want true")
	}
	if cfg.Observability.SlogLevel() != slog.LevelInfo {
		t.Errorf("SlogLevel() = %v, want info", cfg.Observability.SlogLevel())
	}
}

func TestAppConfig_ParseEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("HTTP_COMPRESSION_ENABLED", "true")
	t.Setenv("HTTP_COMPRESSION_LEVEL", "12")
	t.Setenv("QUERY_DEFAULT_PATCH_ID", "31")
	t.Setenv("QUERY_DEFAULT_EXCLUDE_MIRRORS", "false")
	t.Setenv("LOG_LEVEL", " DEBUG ")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("env.Parse() error = %v", err)
	}
	cfg.Sanitize()

	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("HTTP.Addr = %q, want %q", cfg.HTTP.Addr, ":9090")
	}
	if !cfg.HTTP.CompressionEnabled {
		t.Errorf("HTTP.CompressionEnabled = false, want true")
	}
	if cfg.HTTP.CompressionLevel != 9 {
		t.Errorf("HTTP.CompressionLevel = %d, want clamped 9", cfg.HTTP.CompressionLevel)
	}
	d := cfg.Query.Defaults()
	if d.PatchID != 31 || d.ExcludeMirrors {
		t.Errorf("Query.Defaults() = %+v, want PatchID 31 and ExcludeMirrors false", d)
	}
	if cfg.Observability.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want debug", cfg.Observability.SlogLevel())
	}
}

func TestAppConfig_DetectDevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "Development")

	cfg := AppConfig{}
	cfg.Sanitize()

	if !cfg.IsDev {
		t.Errorf("IsDev = false, want true when NODE_ENV=development")
	}
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	h := HTTPConfig{CompressionLevel: 0}
	h.Sanitize()

	if h.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", h.Addr, ":8080")
	}
	if h.CompressionLevel != 1 {
		t.Errorf("CompressionLevel = %d, want 1", h.CompressionLevel)
	}
	if h.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", h.ShutdownTimeout)
	}
}

func TestQueryConfig_Sanitize(t *testing.T) {
	q := QueryConfig{DefaultPatchID: -8}
	q.Sanitize()

	if q.DefaultPatchID != -1 {
		t.Errorf("DefaultPatchID = %d, want -1", q.DefaultPatchID)
	}
}

func TestObservabilityConfig_Sanitize(t *testing.T) {
	c := ObservabilityConfig{LogLevel: "verbose"}
	c.Sanitize()

	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", c.LogLevel)
	}
}
