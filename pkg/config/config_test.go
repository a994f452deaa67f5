package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("Expected api_url %q, got %q", DefaultAPIURL, cfg.APIURL)
	}
	if cfg.Timeout.Duration != 0 {
		t.Errorf("Expected no timeout by default, got %s", cfg.Timeout)
	}
	if cfg.WebAddr() != "localhost:8080" {
		t.Errorf("Expected web addr localhost:8080, got %s", cfg.WebAddr())
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
api_url = "https://books.example.com/api"
timeout = "2s"
debug_services = ["searchapi"]

[web]
host = "0.0.0.0"
port = 9000
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.APIURL != "https://books.example.com/api" {
		t.Errorf("Unexpected api_url %q", cfg.APIURL)
	}
	if cfg.Timeout.Duration != 2*time.Second {
		t.Errorf("Expected 2s timeout, got %s", cfg.Timeout)
	}
	if len(cfg.DebugServices) != 1 || cfg.DebugServices[0] != "searchapi" {
		t.Errorf("Unexpected debug_services %v", cfg.DebugServices)
	}
	if cfg.WebAddr() != "0.0.0.0:9000" {
		t.Errorf("Unexpected web addr %s", cfg.WebAddr())
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `timeout = "500ms"`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("Expected default api_url, got %q", cfg.APIURL)
	}
	if cfg.Web.Host != DefaultWebHost || cfg.Web.Port != DefaultWebPort {
		t.Errorf("Expected default web settings, got %+v", cfg.Web)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"bad toml", `api_url = `, "unmarshaling config"},
		{"bad scheme", `api_url = "ftp://example.com"`, "scheme"},
		{"missing host", `api_url = "http://"`, "missing host"},
		{"negative timeout", `timeout = "-1s"`, "negative"},
		{"bad duration", `timeout = "soon"`, "unmarshaling config"},
		{"bad port", "[web]\nport = 70000", "port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("Expected error containing %q, got %v", tt.errText, err)
			}
		})
	}
}

func TestSaveTemplateConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := GetDefaultConfig()
	cfg.APIURL = "http://search.internal:8000"
	if err := cfg.SaveTemplateConfig(path); err != nil {
		t.Fatalf("SaveTemplateConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.APIURL != "http://search.internal:8000" {
		t.Errorf("Expected saved api_url, got %q", loaded.APIURL)
	}
	if loaded.Timeout.Duration != 0 {
		t.Errorf("Expected sample timeout 0s, got %s", loaded.Timeout)
	}
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := GetDefaultConfig()
	cfg.Timeout = Duration{3 * time.Second}
	if err := cfg.SaveConfig(path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Timeout.Duration != 3*time.Second {
		t.Errorf("Expected 3s timeout, got %s", loaded.Timeout)
	}
}

func TestGetDefaultConfigPathHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := GetDefaultConfigPath()
	if err != nil {
		t.Fatalf("GetDefaultConfigPath failed: %v", err)
	}
	if path != filepath.Join(dir, "folio", "config.toml") {
		t.Errorf("Unexpected config path %s", path)
	}
}
