package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"winsbygroup.com/custbook/internal/config"
)

func TestLoad(t *testing.T) {
	// Helper to clear env vars before each test
	clearEnvVars := func() {
		os.Unsetenv("PORT")
		os.Unsetenv("DB_PATH")
	}

	t.Run("returns defaults when config file does not exist", func(t *testing.T) {
		clearEnvVars()

		cfg, err := config.Load("nonexistent.yaml")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if cfg.Addr != ":5000" {
			t.Errorf("expected Addr ':5000', got %q", cfg.Addr)
		}
		if cfg.DBPath != "./customers.db" {
			t.Errorf("expected DBPath './customers.db', got %q", cfg.DBPath)
		}
		if cfg.DBPathSource != "default" {
			t.Errorf("expected DBPathSource 'default', got %q", cfg.DBPathSource)
		}
		if cfg.ReadTimeout != 5*time.Second {
			t.Errorf("expected ReadTimeout 5s, got %v", cfg.ReadTimeout)
		}
		if cfg.WriteTimeout != 10*time.Second {
			t.Errorf("expected WriteTimeout 10s, got %v", cfg.WriteTimeout)
		}
		if cfg.IdleTimeout != 120*time.Second {
			t.Errorf("expected IdleTimeout 120s, got %v", cfg.IdleTimeout)
		}
	})

	t.Run("loads values from YAML file", func(t *testing.T) {
		clearEnvVars()

		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, "config.yaml")
		yamlContent := `
addr: ":9090"
db_path: "/data/test.db"
read_timeout: 15s
write_timeout: 30s
idle_timeout: 60s
`
		if err := os.WriteFile(cfgPath, []byte(yamlContent), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cfg, err := config.Load(cfgPath)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if cfg.Addr != ":9090" {
			t.Errorf("expected Addr ':9090', got %q", cfg.Addr)
		}
		if cfg.DBPath != "/data/test.db" {
			t.Errorf("expected DBPath '/data/test.db', got %q", cfg.DBPath)
		}
		if cfg.DBPathSource != "yaml file" {
			t.Errorf("expected DBPathSource 'yaml file', got %q", cfg.DBPathSource)
		}
		if cfg.ReadTimeout != 15*time.Second {
			t.Errorf("expected ReadTimeout 15s, got %v", cfg.ReadTimeout)
		}
	})

	t.Run("environment variables override YAML", func(t *testing.T) {
		clearEnvVars()

		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, "config.yaml")
		yamlContent := `
addr: ":9090"
db_path: "/data/yaml.db"
`
		if err := os.WriteFile(cfgPath, []byte(yamlContent), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		t.Setenv("PORT", "7777")
		t.Setenv("DB_PATH", "/data/env.db")

		cfg, err := config.Load(cfgPath)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if cfg.Addr != ":7777" {
			t.Errorf("expected Addr ':7777', got %q", cfg.Addr)
		}
		if cfg.DBPath != "/data/env.db" {
			t.Errorf("expected DBPath '/data/env.db', got %q", cfg.DBPath)
		}
		if cfg.DBPathSource != "env var" {
			t.Errorf("expected DBPathSource 'env var', got %q", cfg.DBPathSource)
		}
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		clearEnvVars()

		tmpDir := t.TempDir()
		cfgPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(cfgPath, []byte("addr: [not, a, string"), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		if _, err := config.Load(cfgPath); err == nil {
			t.Error("expected error for malformed YAML, got none")
		}
	})
}
