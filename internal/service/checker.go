// Package service implements the pre-flight requirement checks that decide
// whether a host is ready to run a Kaspa node in Docker.
package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"kaspa-setup-tool/internal/config"
	"kaspa-setup-tool/internal/console"
	"kaspa-setup-tool/internal/model"
	"kaspa-setup-tool/internal/score"
)

// HardwareProbe supplies the host profile the disk, memory and scoring
// checks consume. Probing is best-effort: unknown fields stay zero-valued
// and the probe never fails.
type HardwareProbe interface {
	Profile(ctx context.Context, workDir string) *model.HostProfile
}

// Checker runs every requirement check in a fixed order and produces a
// PreflightResult. Checks are isolated: a failing check never prevents the
// remaining ones from running.
type Checker struct {
	cfg     *config.Config
	probe   HardwareProbe
	console *console.Console
	logger  zerolog.Logger
	workDir string
	version string

	// profile is collected once at the start of Run and shared by the
	// disk, memory and OS checks.
	profile *model.HostProfile
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithVersion records the tool version in the result.
func WithVersion(version string) CheckerOption {
	return func(c *Checker) {
		c.version = version
	}
}

// WithWorkDir sets the deployment directory that file and disk checks
// inspect. Defaults to the current directory.
func WithWorkDir(dir string) CheckerOption {
	return func(c *Checker) {
		if dir != "" {
			c.workDir = dir
		}
	}
}

// NewChecker creates a checker wired to the given collaborators.
func NewChecker(cfg *config.Config, probe HardwareProbe, cons *console.Console, logger zerolog.Logger, opts ...CheckerOption) *Checker {
	c := &Checker{
		cfg:     cfg,
		probe:   probe,
		console: cons,
		logger:  logger.With().Str("component", "checker").Logger(),
		workDir: ".",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes all checks sequentially and returns the aggregated result.
// The only error it returns is context cancellation; individual check
// failures are reported through the result itself.
func (c *Checker) Run(ctx context.Context) (*model.PreflightResult, error) {
	c.console.Section("Kaspa 节点环境检查")
	c.console.Infof("开始收集主机信息...")

	result := model.NewPreflightResult(time.Now())
	result.Version = c.version
	c.profile = c.probe.Profile(ctx, c.workDir)
	result.Profile = c.profile
	result.Score = score.Compute(c.profile)

	c.logger.Info().
		Str("os", string(result.Profile.OS)).
		Str("distro", result.Profile.Distro).
		Msg("starting pre-flight checks")

	checks := []func(context.Context) []*model.CheckResult{
		c.checkOS,
		c.checkRuntimeVersion,
		c.checkDocker,
		c.checkCompose,
		c.checkDaemon,
		c.checkPorts,
		c.checkDisk,
		c.checkMemory,
		c.checkFiles,
		c.checkDNS,
		c.checkHTTPS,
	}

	for _, check := range checks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, cr := range check(ctx) {
			result.AddCheck(cr)
			c.report(cr)
		}
	}

	result.Finalize(time.Now())
	c.printSummary(result)
	return result, nil
}

// report prints one live line per finished check.
func (c *Checker) report(cr *model.CheckResult) {
	switch {
	case cr.Passed:
		c.console.Successf("%s: %s", cr.Name, cr.Detail)
	case cr.Optional:
		c.console.Warnf("%s: %s", cr.Name, cr.Detail)
	default:
		c.console.Errorf("%s: %s", cr.Name, cr.Detail)
	}
}

func (c *Checker) printSummary(result *model.PreflightResult) {
	c.console.Section("检查结果")
	c.console.Infof("共 %d 项检查，通过 %d 项，失败 %d 项（耗时 %s）",
		result.Summary.Total, result.Summary.Passed, result.Summary.Failed,
		result.Duration.Round(time.Millisecond))

	if result.Score != nil {
		c.console.Section("硬件性能评估")
		c.console.Infof("CPU 评分: %d / 100（%d 物理核 %d 逻辑核）",
			result.Score.CPU, result.Profile.CPUPhysical, result.Profile.CPULogical)
		c.console.Infof("内存评分: %d / 100（%.1f GiB）",
			result.Score.Memory, model.GiB(result.Profile.MemoryTotal))
		c.console.Infof("存储评分: %d / 100（%s）",
			result.Score.Storage, result.Profile.Storage.DisplayName())
		c.console.Infof("综合评分: %.1f / 100，等级: %s", result.Score.Overall, result.Score.Tier)
		c.console.Printf("   %s", score.TierAdvice(result.Score.Tier))
	}

	if result.Summary.AllPassed() {
		c.console.Successf("所有检查通过，主机已准备就绪 🎉")
	} else {
		c.console.Errorf("存在未通过的检查项，请根据上方提示修复后重试")
	}
}
