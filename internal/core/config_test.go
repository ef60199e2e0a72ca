// internal/core/config_test.go
package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Timeout.Std() != 30*time.Second {
		t.Errorf("Expected default timeout 30s, got %v", cfg.Timeout.Std())
	}
	if cfg.MaxBodySize != DefaultMaxBodySize {
		t.Errorf("Expected default max body size %d, got %d", DefaultMaxBodySize, cfg.MaxBodySize)
	}
}

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeTempConfig(t, "scan.yaml", `
timeout: 5s
proxy: http://127.0.0.1:8080
user_agent: CMSScanner/test
tls_insecure: true
headers:
  X-Scanner: probe
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned an error: %v", err)
	}
	if cfg.Timeout.Std() != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %v", cfg.Timeout.Std())
	}
	if cfg.Proxy != "http://127.0.0.1:8080" {
		t.Errorf("Unexpected proxy: %q", cfg.Proxy)
	}
	if !cfg.TLSInsecure {
		t.Error("Expected tls_insecure true")
	}
	if cfg.Headers["X-Scanner"] != "probe" {
		t.Errorf("Unexpected headers: %v", cfg.Headers)
	}
	if cfg.MaxBodySize != DefaultMaxBodySize {
		t.Errorf("Omitted max_body_size should fall back to default, got %d", cfg.MaxBodySize)
	}
}

func TestLoadConfigJSON(t *testing.T) {
	path := writeTempConfig(t, "scan.json", `{
  "timeout": "500ms",
  "basic_auth_user": "admin",
  "basic_auth_pass": "s3cret",
  "max_body_size": 1024
}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned an error: %v", err)
	}
	if cfg.Timeout.Std() != 500*time.Millisecond {
		t.Errorf("Expected timeout 500ms, got %v", cfg.Timeout.Std())
	}
	if cfg.BasicAuthUser != "admin" || cfg.BasicAuthPass != "s3cret" {
		t.Errorf("Credentials not loaded: %q/%q", cfg.BasicAuthUser, cfg.BasicAuthPass)
	}
	if cfg.MaxBodySize != 1024 {
		t.Errorf("Expected max body size 1024, got %d", cfg.MaxBodySize)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected an error for a missing config file")
	}
}
