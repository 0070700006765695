//go:build linux

package hwinfo

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"kaspa-setup-tool/internal/model"
)

const (
	cpuInfoPath  = "/proc/cpuinfo"
	sysBlockPath = "/sys/block"
)

func (p *SystemProbe) osVersion(ctx context.Context) (string, error) {
	content, err := os.ReadFile("/etc/os-release")
	if err != nil {
		return "", err
	}
	return ParsePrettyName(string(content)), nil
}

func (p *SystemProbe) cpuInfo(ctx context.Context) (int, string, error) {
	content, err := os.ReadFile(cpuInfoPath)
	if err != nil {
		return 0, "", err
	}
	cores, modelName := ParseCPUInfo(string(content))
	return cores, modelName, nil
}

func (p *SystemProbe) storageType(ctx context.Context, workDir string) (model.StorageType, error) {
	entries, err := os.ReadDir(sysBlockPath)
	if err != nil {
		return model.StorageUnknown, err
	}

	best := model.StorageUnknown
	for _, entry := range entries {
		name := entry.Name()
		if isVirtualBlockDevice(name) {
			continue
		}
		rotational, err := os.ReadFile(filepath.Join(sysBlockPath, name, "queue", "rotational"))
		if err != nil {
			continue
		}
		kind := ClassifyBlockDevice(name, strings.TrimSpace(string(rotational)))
		if storageRank(kind) > storageRank(best) {
			best = kind
		}
	}
	return best, nil
}

// ParsePrettyName extracts the PRETTY_NAME value from os-release content.
func ParsePrettyName(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "PRETTY_NAME=") {
			continue
		}
		value := strings.TrimPrefix(line, "PRETTY_NAME=")
		return strings.Trim(value, `"`)
	}
	return ""
}

// ParseCPUInfo parses /proc/cpuinfo content and returns the physical core
// count and the CPU model name. Physical cores are counted as unique
// (physical id, core id) pairs; when the kernel exposes neither field, the
// processor entry count is used instead.
func ParseCPUInfo(content string) (int, string) {
	type coreKey struct {
		physicalID string
		coreID     string
	}

	cores := make(map[coreKey]struct{})
	var modelName string
	var processors int
	var physicalID string

	for _, line := range strings.Split(content, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "processor":
			processors++
		case "physical id":
			physicalID = value
		case "core id":
			cores[coreKey{physicalID: physicalID, coreID: value}] = struct{}{}
		case "model name":
			if modelName == "" {
				modelName = value
			}
		}
	}

	if len(cores) > 0 {
		return len(cores), modelName
	}
	return processors, modelName
}

// ClassifyBlockDevice maps a block device name and its rotational flag to a
// storage type. NVMe devices are identified by name, everything else by the
// kernel's rotational flag.
func ClassifyBlockDevice(name, rotational string) model.StorageType {
	if strings.HasPrefix(name, "nvme") {
		return model.StorageNVMe
	}
	switch rotational {
	case "0":
		return model.StorageSSD
	case "1":
		return model.StorageHDD
	default:
		return model.StorageUnknown
	}
}

func isVirtualBlockDevice(name string) bool {
	for _, prefix := range []string{"loop", "ram", "zram", "dm-", "sr", "fd", "md"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func storageRank(s model.StorageType) int {
	switch s {
	case model.StorageNVMe:
		return 3
	case model.StorageSSD:
		return 2
	case model.StorageHDD:
		return 1
	default:
		return 0
	}
}
