// Package config provides configuration management for the setup tool.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Load reads configuration from the optional YAML file and environment
// variables. Environment variables take precedence over file values.
// Environment variable format: KASPA_SETUP_<SECTION>_<KEY>
// (e.g., KASPA_SETUP_CHECKS_MIN_DISK_GIB).
//
// Unlike most tools, the config file is optional: every setting has a
// working default so the binary can run on a freshly provisioned host
// with no files in place.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults first
	setDefaults(v)

	// Configure environment variable binding
	v.SetEnvPrefix("KASPA_SETUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values for all configuration options.
func setDefaults(v *viper.Viper) {
	// Checks defaults: the four node ports are P2P, gRPC, wRPC Borsh and
	// wRPC JSON in that order.
	v.SetDefault("checks.ports", []int{16111, 16110, 17110, 18110})
	v.SetDefault("checks.required_files", []string{"docker-compose.yml", "Dockerfile", ".env.example"})
	v.SetDefault("checks.min_disk_gib", 10.0)
	v.SetDefault("checks.min_memory_gib", 2.0)
	v.SetDefault("checks.probe_host", "docker.io")
	v.SetDefault("checks.probe_url", "https://docker.io")
	v.SetDefault("checks.probe_timeout", 5*time.Second)
	v.SetDefault("checks.command_timeout", 10*time.Second)

	// Install defaults
	v.SetDefault("install.compose_fallback_version", "v2.24.0")
	v.SetDefault("install.download_timeout", 120*time.Second)
	v.SetDefault("install.retry.max_retries", 3)
	v.SetDefault("install.retry.base_delay", 1*time.Second)

	// Wizard defaults
	v.SetDefault("wizard.output_path", ".env")
	v.SetDefault("wizard.compose_file", "docker-compose.yml")

	// Report defaults
	v.SetDefault("report.output_dir", "./reports")
	v.SetDefault("report.formats", []string{"excel", "html"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
