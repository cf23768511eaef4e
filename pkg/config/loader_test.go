package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonesrussell/news-aggregator/pkg/config"
)

type testConfig struct {
	Name    string        `yaml:"name" env:"TEST_NAME"`
	Port    int           `yaml:"port" env:"TEST_PORT"`
	Debug   bool          `yaml:"debug" env:"TEST_DEBUG"`
	Timeout time.Duration `yaml:"timeout" env:"TEST_TIMEOUT"`
	Origins []string      `yaml:"origins" env:"TEST_ORIGINS"`
	Nested  nestedConfig  `yaml:"nested"`
}

type nestedConfig struct {
	Value string `yaml:"value" env:"TEST_NESTED_VALUE"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
name: from-yaml
port: 9000
timeout: 5s
origins:
  - https://a.example.com
nested:
  value: inner
`)

	cfg, err := config.Load[testConfig](path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Name != "from-yaml" {
		t.Errorf("Name = %q, want from-yaml", cfg.Name)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.Nested.Value != "inner" {
		t.Errorf("Nested.Value = %q, want inner", cfg.Nested.Value)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
name: from-yaml
port: 9000
`)

	t.Setenv("TEST_NAME", "from-env")
	t.Setenv("TEST_PORT", "7777")
	t.Setenv("TEST_DEBUG", "true")
	t.Setenv("TEST_TIMEOUT", "90s")
	t.Setenv("TEST_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("TEST_NESTED_VALUE", "nested-env")

	cfg, err := config.Load[testConfig](path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Name != "from-env" {
		t.Errorf("Name = %q, env should win over yaml", cfg.Name)
	}
	if cfg.Port != 7777 {
		t.Errorf("Port = %d, want 7777", cfg.Port)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true from env")
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.Timeout)
	}
	if len(cfg.Origins) != 2 || cfg.Origins[1] != "https://b.example.com" {
		t.Errorf("Origins = %v, want trimmed comma-split pair", cfg.Origins)
	}
	if cfg.Nested.Value != "nested-env" {
		t.Errorf("Nested.Value = %q, nested structs take env overrides too", cfg.Nested.Value)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeConfig(t, `name: from-yaml`)

	t.Setenv("TEST_PORT", "7777")

	cfg, err := config.LoadWithDefaults(path, func(c *testConfig) {
		if c.Port == 0 {
			c.Port = 8080
		}
		if c.Name == "" {
			c.Name = "fallback"
		}
	})
	if err != nil {
		t.Fatalf("LoadWithDefaults() error: %v", err)
	}

	if cfg.Name != "from-yaml" {
		t.Errorf("Name = %q, yaml should survive defaults", cfg.Name)
	}
	// The env override is re-applied after defaults.
	if cfg.Port != 7777 {
		t.Errorf("Port = %d, env should win over the default", cfg.Port)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load[testConfig](filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("Load() = nil, want error for a missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "name: [unclosed")
	if _, err := config.Load[testConfig](path); err == nil {
		t.Error("Load() = nil, want parse error")
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	if got := config.GetConfigPath("config.yml"); got != "config.yml" {
		t.Errorf("GetConfigPath() = %q, want fallback", got)
	}

	t.Setenv("CONFIG_PATH", "/etc/svc/config.yml")
	if got := config.GetConfigPath("config.yml"); got != "/etc/svc/config.yml" {
		t.Errorf("GetConfigPath() = %q, want env value", got)
	}
}
