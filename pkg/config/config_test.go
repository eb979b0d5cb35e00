package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prostmich/textit-go/pkg/api"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.API.URL != api.DefaultURL {
		t.Errorf("expected production URL, got %q", cfg.API.URL)
	}
	if cfg.API.HelpURL != api.HelpURL {
		t.Errorf("expected help URL, got %q", cfg.API.HelpURL)
	}
	if cfg.API.TimeoutMS <= 0 {
		t.Errorf("expected positive timeout, got %d", cfg.API.TimeoutMS)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[api]\nurl = \"http://localhost:9999/data\"\ntimeout_ms = 5000\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.API.URL != "http://localhost:9999/data" {
		t.Errorf("override ignored: %q", cfg.API.URL)
	}
	if cfg.API.TimeoutMS != 5000 {
		t.Errorf("override ignored: %d", cfg.API.TimeoutMS)
	}
	// Keys missing from the file keep defaults.
	if cfg.API.HelpURL != api.HelpURL {
		t.Errorf("default lost: %q", cfg.API.HelpURL)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("default lost: %q", cfg.Log.Level)
	}
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.API.URL != api.DefaultURL {
		t.Errorf("expected defaults, got %q", cfg.API.URL)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}

	// Second init loads the file it just wrote.
	again, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig reload: %v", err)
	}
	if again.API.URL != cfg.API.URL {
		t.Errorf("reload mismatch: %q vs %q", again.API.URL, cfg.API.URL)
	}
}
