package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonesrussell/news-aggregator/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "service:\n  name: newsagg-test\n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Service.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Service.Port)
	}
	if cfg.Aggregator.MaxConcurrency != 4 {
		t.Errorf("MaxConcurrency = %d, want 4", cfg.Aggregator.MaxConcurrency)
	}
	if cfg.Aggregator.FanoutTimeout != 30*time.Second {
		t.Errorf("FanoutTimeout = %v, want 30s", cfg.Aggregator.FanoutTimeout)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v, want [*]", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad port", "service:\n  port: 70000\n"},
		{"bad log level", "logging:\n  level: chatty\n"},
		{"bad log format", "logging:\n  format: xml\n"},
		{"fanout timeout too small", "aggregator:\n  fanout_timeout: 10ms\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := config.Load(writeConfig(t, tt.yaml)); err == nil {
				t.Error("Load() = nil, want validation error")
			}
		})
	}
}

func TestAllowCredentials(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		want    bool
	}{
		{"wildcard", []string{"*"}, false},
		{"wildcard among explicit", []string{"https://a.example.com", "*"}, false},
		{"explicit list", []string{"https://a.example.com"}, true},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.CORSConfig{AllowedOrigins: tt.origins}
			if got := c.AllowCredentials(); got != tt.want {
				t.Errorf("AllowCredentials() = %v, want %v", got, tt.want)
			}
		})
	}
}
