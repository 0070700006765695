// Package hwinfo collects hardware facts about the local host: CPU topology,
// memory size, storage medium and disk capacity. Collection is best-effort
// and never fails the caller; fields that cannot be determined stay at their
// zero value and a warning is logged.
package hwinfo

import (
	"context"
	"runtime"
	"time"

	"github.com/mackerelio/go-osstat/memory"
	"github.com/rs/zerolog"

	"kaspa-setup-tool/internal/model"
	"kaspa-setup-tool/internal/platform"
)

// DefaultCommandTimeout bounds every external command the probe shells out to.
const DefaultCommandTimeout = 5 * time.Second

// SystemProbe gathers a HostProfile from the running machine.
type SystemProbe struct {
	timeout time.Duration
	logger  zerolog.Logger
}

// Option configures a SystemProbe.
type Option func(*SystemProbe)

// WithCommandTimeout overrides the per-command timeout.
func WithCommandTimeout(d time.Duration) Option {
	return func(p *SystemProbe) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// NewSystemProbe creates a probe that logs through the given logger.
func NewSystemProbe(logger zerolog.Logger, opts ...Option) *SystemProbe {
	p := &SystemProbe{
		timeout: DefaultCommandTimeout,
		logger:  logger.With().Str("component", "hwinfo").Logger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Profile collects a snapshot of the host hardware. workDir is the directory
// whose filesystem is measured for disk capacity, typically the deployment
// directory where the node's data will live.
func (p *SystemProbe) Profile(ctx context.Context, workDir string) *model.HostProfile {
	profile := &model.HostProfile{
		OS:         platform.Detect(),
		CPULogical: runtime.NumCPU(),
	}

	if profile.OS == model.OSLinux {
		profile.Distro = platform.DetectDistro()
	}

	if version, err := p.osVersion(ctx); err != nil {
		p.logger.Warn().Err(err).Msg("failed to detect OS version")
	} else {
		profile.OSVersion = version
	}

	if stats, err := memory.Get(); err != nil {
		p.logger.Warn().Err(err).Msg("failed to read memory statistics")
	} else {
		profile.MemoryTotal = stats.Total
		profile.MemoryFree = availableMemory(stats)
	}

	cores, modelName, err := p.cpuInfo(ctx)
	if err != nil {
		p.logger.Warn().Err(err).Msg("failed to detect CPU topology, falling back to logical cores")
		profile.CPUPhysical = profile.CPULogical
	} else {
		profile.CPUPhysical = cores
		profile.CPUModel = modelName
	}

	storage, err := p.storageType(ctx, workDir)
	if err != nil {
		p.logger.Warn().Err(err).Msg("failed to classify storage medium")
		profile.Storage = model.StorageUnknown
	} else {
		profile.Storage = storage
	}

	free, total, err := diskUsage(workDir)
	if err != nil {
		p.logger.Warn().Err(err).Str("path", workDir).Msg("failed to read disk usage")
	} else {
		profile.DiskFree = free
		profile.DiskTotal = total
	}

	p.logger.Debug().
		Int("cpu_physical", profile.CPUPhysical).
		Int("cpu_logical", profile.CPULogical).
		Uint64("memory_total", profile.MemoryTotal).
		Str("storage", string(profile.Storage)).
		Msg("host profile collected")

	return profile
}
