package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	wantPorts := []int{16111, 16110, 17110, 18110}
	if len(cfg.Checks.Ports) != len(wantPorts) {
		t.Fatalf("Ports = %v, want %v", cfg.Checks.Ports, wantPorts)
	}
	for i, port := range wantPorts {
		if cfg.Checks.Ports[i] != port {
			t.Errorf("Ports[%d] = %d, want %d", i, cfg.Checks.Ports[i], port)
		}
	}

	if cfg.Checks.MinDiskGiB != 10.0 {
		t.Errorf("MinDiskGiB = %v, want 10.0", cfg.Checks.MinDiskGiB)
	}
	if cfg.Checks.MinMemoryGiB != 2.0 {
		t.Errorf("MinMemoryGiB = %v, want 2.0", cfg.Checks.MinMemoryGiB)
	}
	if cfg.Checks.ProbeHost != "docker.io" {
		t.Errorf("ProbeHost = %q, want docker.io", cfg.Checks.ProbeHost)
	}
	if cfg.Install.ComposeFallbackVersion != "v2.24.0" {
		t.Errorf("ComposeFallbackVersion = %q, want v2.24.0", cfg.Install.ComposeFallbackVersion)
	}
	if cfg.Wizard.OutputPath != ".env" {
		t.Errorf("Wizard.OutputPath = %q, want .env", cfg.Wizard.OutputPath)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	configYAML := `
checks:
  ports: [16111]
  min_disk_gib: 50
install:
  compose_fallback_version: v2.30.1
logging:
  level: debug
  format: json
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(configYAML), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Checks.Ports) != 1 || cfg.Checks.Ports[0] != 16111 {
		t.Errorf("Ports = %v, want [16111]", cfg.Checks.Ports)
	}
	if cfg.Checks.MinDiskGiB != 50 {
		t.Errorf("MinDiskGiB = %v, want 50", cfg.Checks.MinDiskGiB)
	}
	if cfg.Install.ComposeFallbackVersion != "v2.30.1" {
		t.Errorf("ComposeFallbackVersion = %q, want v2.30.1", cfg.Install.ComposeFallbackVersion)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}

	// Keys the file does not mention keep their defaults.
	if cfg.Checks.ProbeHost != "docker.io" {
		t.Errorf("ProbeHost = %q, want default docker.io", cfg.Checks.ProbeHost)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	configYAML := `
checks:
  min_disk_gib: 50
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(configYAML), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("KASPA_SETUP_CHECKS_MIN_DISK_GIB", "100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Checks.MinDiskGiB != 100 {
		t.Errorf("MinDiskGiB = %v, want 100 from environment", cfg.Checks.MinDiskGiB)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() with missing file should fail")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	configYAML := `
checks:
  ports: [70000]
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(configYAML), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() with out-of-range port should fail validation")
	}
}

func TestLoad_DurationDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Checks.ProbeTimeout != 5*time.Second {
		t.Errorf("ProbeTimeout = %v, want 5s", cfg.Checks.ProbeTimeout)
	}
	if cfg.Install.DownloadTimeout != 120*time.Second {
		t.Errorf("DownloadTimeout = %v, want 2m", cfg.Install.DownloadTimeout)
	}
	if cfg.Install.Retry.MaxRetries != 3 {
		t.Errorf("Retry.MaxRetries = %d, want 3", cfg.Install.Retry.MaxRetries)
	}
}
