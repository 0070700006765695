//go:build windows

package hwinfo

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"kaspa-setup-tool/internal/model"
)

func (p *SystemProbe) osVersion(ctx context.Context) (string, error) {
	out, err := p.powershell(ctx, "(Get-CimInstance Win32_OperatingSystem).Caption")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (p *SystemProbe) cpuInfo(ctx context.Context) (int, string, error) {
	out, err := p.powershell(ctx,
		"(Get-CimInstance Win32_Processor | Measure-Object -Property NumberOfCores -Sum).Sum")
	if err != nil {
		return 0, "", err
	}
	cores, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		return 0, "", err
	}

	modelName := ""
	if out, err := p.powershell(ctx, "(Get-CimInstance Win32_Processor)[0].Name"); err == nil {
		modelName = strings.TrimSpace(out)
	}
	return cores, modelName, nil
}

func (p *SystemProbe) storageType(ctx context.Context, workDir string) (model.StorageType, error) {
	out, err := p.powershell(ctx, "(Get-PhysicalDisk | Select-Object -ExpandProperty MediaType)")
	if err != nil {
		return model.StorageUnknown, err
	}
	return ClassifyMediaTypes(out), nil
}

// ClassifyMediaTypes maps Get-PhysicalDisk MediaType output, one value per
// line, to the best storage type present. Windows does not distinguish NVMe
// from SATA SSDs through MediaType, so SSD is the highest class reported.
func ClassifyMediaTypes(output string) model.StorageType {
	best := model.StorageUnknown
	for _, line := range strings.Split(output, "\n") {
		var kind model.StorageType
		switch strings.TrimSpace(line) {
		case "SSD":
			kind = model.StorageSSD
		case "HDD":
			kind = model.StorageHDD
		default:
			continue
		}
		if kind == model.StorageSSD {
			return model.StorageSSD
		}
		best = kind
	}
	return best
}

func (p *SystemProbe) powershell(ctx context.Context, script string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	out, err := exec.CommandContext(cctx, "powershell", "-NoProfile", "-Command", script).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
