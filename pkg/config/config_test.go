package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// clearEnv unsets every variable Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "PORTFOLIO_ROOT", "PORTFOLIO_ENTRY_DOCUMENT", "PORTFOLIO_CACHE_MAX_AGE",
		"PORTFOLIO_CONTENT_DIR", "PORTFOLIO_OUTPUT_DIR", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "portfolio.yaml")

	err := os.WriteFile(configPath, []byte(`server:
  port: 3002
  root: /srv/portfolio
content:
  dir: ./content
log:
  format: console
`), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 3002 {
		t.Errorf("Expected port 3002, got %d", cfg.Server.Port)
	}
	if cfg.Server.Root != "/srv/portfolio" {
		t.Errorf("Expected root /srv/portfolio, got %s", cfg.Server.Root)
	}
	if cfg.Server.EntryDocument != "index.html" {
		t.Errorf("Expected default entry document, got %s", cfg.Server.EntryDocument)
	}
	if cfg.Server.CacheMaxAge != 365*24*time.Hour {
		t.Errorf("Expected one year cache max age, got %s", cfg.Server.CacheMaxAge)
	}
	if cfg.Content.Dir != "./content" {
		t.Errorf("Expected content dir ./content, got %s", cfg.Content.Dir)
	}
	if cfg.Log.Format != "console" || cfg.Log.Level != "info" {
		t.Errorf("Expected console/info logging, got %s/%s", cfg.Log.Format, cfg.Log.Level)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("PORTFOLIO_ROOT", "public")

	configPath := filepath.Join(t.TempDir(), "portfolio.yaml")
	err := os.WriteFile(configPath, []byte("server:\n  port: 3002\n"), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected PORT to override file, got %d", cfg.Server.Port)
	}
	if cfg.Server.Root != "public" {
		t.Errorf("Expected PORTFOLIO_ROOT to override default, got %s", cfg.Server.Root)
	}
}

func TestLoadEnvOnly(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Server.Root != "dist" {
		t.Errorf("Expected default root dist, got %s", cfg.Server.Root)
	}
	if cfg.Server.Addr() != ":3000" {
		t.Errorf("Expected addr :3000, got %s", cfg.Server.Addr())
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/path/portfolio.yaml")
	if err == nil {
		t.Error("Expected error loading nonexistent config, got nil")
	}
}

func TestLoadInvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "70000")

	_, err := Load("")
	if err == nil {
		t.Error("Expected error for out-of-range port, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantError bool
	}{
		{
			name:      "default config",
			config:    Default(),
			wantError: false,
		},
		{
			name:      "empty fields get defaults",
			config:    Config{Server: ServerConfig{Port: 3000}},
			wantError: false,
		},
		{
			name:      "missing port",
			config:    Config{},
			wantError: true,
		},
		{
			name:      "absolute entry document",
			config:    Config{Server: ServerConfig{Port: 3000, EntryDocument: "/etc/index.html"}},
			wantError: true,
		},
		{
			name:      "negative max age",
			config:    Config{Server: ServerConfig{Port: 3000, CacheMaxAge: -time.Second}},
			wantError: true,
		},
		{
			name:      "bad log level",
			config:    Config{Server: ServerConfig{Port: 3000}, Log: LogConfig{Level: "trace"}},
			wantError: true,
		},
		{
			name:      "bad log format",
			config:    Config{Server: ServerConfig{Port: 3000}, Log: LogConfig{Format: "xml"}},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestValidateFillsDefaults(t *testing.T) {
	cfg := Config{Server: ServerConfig{Port: 3000}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Server.Root != "dist" || cfg.Server.EntryDocument != "index.html" {
		t.Errorf("Expected serving defaults, got %+v", cfg.Server)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Expected logging defaults, got %+v", cfg.Log)
	}
}

func TestInitConfig(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "portfolio.yaml")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	var written Config
	err = yaml.Unmarshal(data, &written)
	if err != nil {
		t.Fatalf("Failed to parse config file: %v", err)
	}
	if written != Default() {
		t.Errorf("Expected default config, got %+v", written)
	}

	// The written file loads cleanly.
	_, err = Load(configPath)
	if err != nil {
		t.Errorf("Expected written config to load, got %v", err)
	}

	// A second init refuses to overwrite.
	err = InitConfig(configPath)
	if err == nil {
		t.Error("Expected error when config already exists, got nil")
	}
}
