//go:build darwin

package hwinfo

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"kaspa-setup-tool/internal/model"
)

func (p *SystemProbe) osVersion(ctx context.Context) (string, error) {
	out, err := p.command(ctx, "sw_vers", "-productVersion")
	if err != nil {
		return "", err
	}
	return "macOS " + strings.TrimSpace(out), nil
}

func (p *SystemProbe) cpuInfo(ctx context.Context) (int, string, error) {
	coresOut, err := p.command(ctx, "sysctl", "-n", "hw.physicalcpu")
	if err != nil {
		return 0, "", err
	}
	cores, err := strconv.Atoi(strings.TrimSpace(coresOut))
	if err != nil {
		return 0, "", err
	}

	// Apple Silicon machines do not expose machdep.cpu.brand_string the same
	// way as Intel ones, so a failure here only loses the model name.
	modelName := ""
	if out, err := p.command(ctx, "sysctl", "-n", "machdep.cpu.brand_string"); err == nil {
		modelName = strings.TrimSpace(out)
	}
	return cores, modelName, nil
}

func (p *SystemProbe) storageType(ctx context.Context, workDir string) (model.StorageType, error) {
	out, err := p.command(ctx, "diskutil", "info", "/")
	if err != nil {
		return model.StorageUnknown, err
	}
	return ParseDiskutilInfo(out), nil
}

// ParseDiskutilInfo classifies the boot volume from `diskutil info /` output.
// Apple Silicon and modern Intel Macs ship NVMe internal storage; older
// machines report a SATA protocol with a Solid State flag.
func ParseDiskutilInfo(output string) model.StorageType {
	solidState := false
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "Protocol":
			if strings.Contains(value, "NVMe") || strings.Contains(value, "Apple Fabric") {
				return model.StorageNVMe
			}
		case "Solid State":
			solidState = strings.EqualFold(value, "Yes")
		}
	}
	if solidState {
		return model.StorageSSD
	}
	return model.StorageUnknown
}

func (p *SystemProbe) command(ctx context.Context, name string, args ...string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	out, err := exec.CommandContext(cctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
