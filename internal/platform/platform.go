// Package platform identifies the host operating system and, on Linux, the
// specific distribution. Detection is best-effort: an unrecognised host
// yields model.OSUnknown / "unknown" and callers must treat that as "ask the
// operator to proceed manually", never as fatal.
package platform

import (
	"os"
	"runtime"
	"strings"

	"kaspa-setup-tool/internal/model"
)

// osReleasePath is the standard descriptor file on modern Linux systems.
// Overridable in tests.
var osReleasePath = "/etc/os-release"

// markerFiles maps distribution marker files to family identifiers, used
// when the os-release descriptor is absent or unparsable.
var markerFiles = []struct {
	path string
	id   string
}{
	{"/etc/debian_version", "debian"},
	{"/etc/redhat-release", "rhel"},
	{"/etc/arch-release", "arch"},
}

// Detect returns the OS family of the running host.
func Detect() model.OSFamily {
	switch runtime.GOOS {
	case "linux":
		return model.OSLinux
	case "darwin":
		return model.OSDarwin
	case "windows":
		return model.OSWindows
	default:
		return model.OSUnknown
	}
}

// DetectDistro returns a best-effort Linux distribution identifier
// (e.g. "ubuntu", "debian", "fedora", "arch"). On non-Linux hosts and when
// no signal matches it returns "unknown".
func DetectDistro() string {
	if Detect() != model.OSLinux {
		return "unknown"
	}

	if data, err := os.ReadFile(osReleasePath); err == nil {
		if id := ParseOSRelease(string(data)); id != "" {
			return id
		}
	}

	// Fallback: marker file existence checks
	for _, m := range markerFiles {
		if _, err := os.Stat(m.path); err == nil {
			return m.id
		}
	}

	return "unknown"
}

// ParseOSRelease extracts the ID field from os-release file content.
// Returns "" when the field is absent.
func ParseOSRelease(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "ID=") {
			continue
		}
		id := strings.TrimPrefix(line, "ID=")
		id = strings.Trim(id, `"'`)
		return strings.ToLower(strings.TrimSpace(id))
	}
	return ""
}

// DistroFamily groups distribution IDs into installer branches.
type DistroFamily string

const (
	FamilyDebian  DistroFamily = "debian"  // apt 系
	FamilyRHEL    DistroFamily = "rhel"    // yum 系
	FamilyArch    DistroFamily = "arch"    // pacman 系
	FamilyUnknown DistroFamily = "unknown" // 未识别
)

// FamilyOf maps a distribution ID to its installer branch.
func FamilyOf(distro string) DistroFamily {
	switch distro {
	case "ubuntu", "debian", "raspbian", "linuxmint":
		return FamilyDebian
	case "centos", "rhel", "fedora", "rocky", "almalinux":
		return FamilyRHEL
	case "arch", "manjaro":
		return FamilyArch
	default:
		return FamilyUnknown
	}
}

// PackageArch translates the machine architecture into the Debian packaging
// architecture naming. Unmapped architectures pass through unchanged.
func PackageArch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "amd64"
	case "arm64":
		return "arm64"
	case "arm":
		return "armhf"
	default:
		return runtime.GOARCH
	}
}

// ComposeArch translates the machine architecture into the naming used by
// docker-compose release artifacts. Returns "" for unsupported architectures.
func ComposeArch() string {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	default:
		return ""
	}
}
