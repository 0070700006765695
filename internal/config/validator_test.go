package config

import (
	"strings"
	"testing"
	"time"
)

// validConfig returns a configuration that passes all validations.
func validConfig() *Config {
	return &Config{
		Checks: ChecksConfig{
			Ports:          []int{16111, 16110},
			RequiredFiles:  []string{"docker-compose.yml"},
			MinDiskGiB:     10,
			MinMemoryGiB:   2,
			ProbeHost:      "docker.io",
			ProbeURL:       "https://docker.io",
			ProbeTimeout:   5 * time.Second,
			CommandTimeout: 10 * time.Second,
		},
		Install: InstallConfig{
			ComposeFallbackVersion: "v2.24.0",
			DownloadTimeout:        time.Minute,
			Retry:                  RetryConfig{MaxRetries: 3, BaseDelay: time.Second},
		},
		Wizard: WizardConfig{
			OutputPath:  ".env",
			ComposeFile: "docker-compose.yml",
		},
		Report: ReportConfig{
			OutputDir: "./reports",
			Formats:   []string{"excel", "html"},
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_PortRange(t *testing.T) {
	cfg := validConfig()
	cfg.Checks.Ports = []int{0}
	if err := Validate(cfg); err == nil {
		t.Error("port 0 should fail validation")
	}

	cfg.Checks.Ports = []int{65536}
	if err := Validate(cfg); err == nil {
		t.Error("port 65536 should fail validation")
	}

	cfg.Checks.Ports = nil
	if err := Validate(cfg); err == nil {
		t.Error("empty port list should fail validation")
	}
}

func TestValidate_DuplicatePorts(t *testing.T) {
	cfg := validConfig()
	cfg.Checks.Ports = []int{16111, 16111}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("duplicate ports should fail validation")
	}
	if !strings.Contains(err.Error(), "duplicate port: 16111") {
		t.Errorf("error = %q, want duplicate port message", err.Error())
	}
}

func TestValidate_BadProbeURL(t *testing.T) {
	cfg := validConfig()
	cfg.Checks.ProbeURL = "not a url"
	if err := Validate(cfg); err == nil {
		t.Error("malformed probe URL should fail validation")
	}
}

func TestValidate_BadReportFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Report.Formats = []string{"pdf"}
	if err := Validate(cfg); err == nil {
		t.Error("unsupported report format should fail validation")
	}
}

func TestValidate_BadLogging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"
	if err := Validate(cfg); err == nil {
		t.Error("unknown log level should fail validation")
	}

	cfg = validConfig()
	cfg.Logging.Format = "text"
	if err := Validate(cfg); err == nil {
		t.Error("unknown log format should fail validation")
	}
}

func TestValidate_ErrorsAreCollected(t *testing.T) {
	cfg := validConfig()
	cfg.Checks.MinDiskGiB = 0
	cfg.Checks.MinMemoryGiB = -1
	cfg.Logging.Level = "loud"

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("error type = %T, want ValidationErrors", err)
	}
	if len(verrs) < 3 {
		t.Errorf("collected %d errors, want at least 3: %v", len(verrs), err)
	}
}

func TestFormatFieldName(t *testing.T) {
	got := formatFieldName("Config.Checks.MinDiskGiB")
	if got != "checks.mindiskgib" {
		t.Errorf("formatFieldName() = %q, want checks.mindiskgib", got)
	}
}
