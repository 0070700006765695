// Package envfile renders the flat KEY=VALUE environment file consumed by
// docker compose.
package envfile

import (
	"fmt"
	"os"
	"strings"
	"text/template"
)

// envTemplate fixes the key order and section layout of the generated file.
// SERVICE_NAME and PEERS are not asked by the wizard and keep their
// project-wide values.
const envTemplate = `# Kaspa Node Configuration
# Generated by Kaspa Docker Setup Wizard
# Developed by KaspaDev (KRCBOT)

# Service Configuration
SERVICE_NAME=research-pad
CONTAINER_NAME={{.CONTAINER_NAME}}
IMAGE_NAME={{.IMAGE_NAME}}
IMAGE_TAG={{.IMAGE_TAG}}

# Network Configuration
P2P_PORT={{.P2P_PORT}}
GRPC_PORT={{.GRPC_PORT}}
WRPC_BORSH_PORT={{.WRPC_BORSH_PORT}}
WRPC_JSON_PORT={{.WRPC_JSON_PORT}}
EXTERNAL_IP={{.EXTERNAL_IP}}

# Data Configuration
DATA_VOLUME_PATH={{.DATA_VOLUME_PATH}}
APP_DATA_PATH={{.APP_DATA_PATH}}

# DNS Configuration
DNS_PRIMARY={{.DNS_PRIMARY}}
DNS_SECONDARY={{.DNS_SECONDARY}}

# User Configuration
USER_ID={{.USER_ID}}
GROUP_ID={{.GROUP_ID}}

# Resource Limits
ULIMIT_SOFT={{.ULIMIT_SOFT}}
ULIMIT_HARD={{.ULIMIT_HARD}}

# Health Check Configuration
HEALTH_CHECK_INTERVAL={{.HEALTH_CHECK_INTERVAL}}
HEALTH_CHECK_TIMEOUT={{.HEALTH_CHECK_TIMEOUT}}
HEALTH_CHECK_RETRIES={{.HEALTH_CHECK_RETRIES}}
HEALTH_CHECK_START_PERIOD={{.HEALTH_CHECK_START_PERIOD}}

# Peer Configuration (comma-separated list)
PEERS=51.79.24.82:16111,162.55.100.124:16111
`

var envTmpl = template.Must(template.New("env").Option("missingkey=error").Parse(envTemplate))

// Render produces the file content from the wizard's answers. Every key the
// template references must be present in values.
func Render(values map[string]string) (string, error) {
	var sb strings.Builder
	if err := envTmpl.Execute(&sb, values); err != nil {
		return "", fmt.Errorf("failed to render env file: %w", err)
	}
	return sb.String(), nil
}

// Write renders and saves the file.
func Write(path string, values map[string]string) error {
	content, err := Render(values)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Exists reports whether a file is already present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
