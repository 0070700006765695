package install

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"kaspa-setup-tool/internal/config"
	"kaspa-setup-tool/internal/console"
	"kaspa-setup-tool/internal/platform"
)

// Installer installs Docker Engine and Docker Compose using the strategy
// matching the detected platform.
type Installer struct {
	cfg     *config.Config
	runner  *Runner
	console *console.Console
	logger  zerolog.Logger
	client  *resty.Client
}

// NewInstaller creates an installer. The HTTP client retries on transport
// errors and server-side failures only.
func NewInstaller(cfg *config.Config, cons *console.Console, logger zerolog.Logger) *Installer {
	client := resty.New().
		SetTimeout(cfg.Install.DownloadTimeout).
		SetRetryCount(cfg.Install.Retry.MaxRetries).
		SetRetryWaitTime(cfg.Install.Retry.BaseDelay).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})

	return &Installer{
		cfg:     cfg,
		runner:  NewRunner(cons, logger),
		console: cons,
		logger:  logger.With().Str("component", "install").Logger(),
		client:  client,
	}
}

// Run installs Docker and Compose, skipping whatever is already present,
// then verifies the installation end to end.
func (i *Installer) Run(ctx context.Context) error {
	i.console.Section("Docker 环境安装")

	strat, err := i.strategyFor(platform.Detect())
	if err != nil {
		return err
	}

	if i.dockerInstalled(ctx) {
		i.console.Successf("Docker 已安装，跳过引擎安装")
	} else if err := strat.InstallDocker(ctx); err != nil {
		return err
	}

	if i.composeInstalled(ctx) {
		i.console.Successf("Docker Compose 已安装，跳过安装")
	} else if err := strat.InstallCompose(ctx); err != nil {
		return err
	}

	return strat.Verify(ctx)
}

// dockerInstalled reports whether a working docker binary is on PATH.
func (i *Installer) dockerInstalled(ctx context.Context) bool {
	if _, err := exec.LookPath("docker"); err != nil {
		return false
	}
	return i.runner.Quiet(ctx, "docker", "--version")
}

// composeInstalled accepts either the compose plugin or the standalone
// binary.
func (i *Installer) composeInstalled(ctx context.Context) bool {
	if i.runner.Quiet(ctx, "docker", "compose", "version") {
		return true
	}
	if _, err := exec.LookPath("docker-compose"); err != nil {
		return false
	}
	return i.runner.Quiet(ctx, "docker-compose", "--version")
}

// verify confirms the installed toolchain actually works. A daemon that is
// installed but not yet running is reported as a warning, not a failure,
// since a fresh install often needs a re-login for group membership.
func (i *Installer) verify(ctx context.Context) error {
	i.console.Section("安装结果验证")

	out, err := i.runner.Output(ctx, "docker", "--version")
	if err != nil {
		return fmt.Errorf("docker verification failed: %w", err)
	}
	i.console.Successf("Docker: %s", trimLine(out))

	if i.runner.Quiet(ctx, "docker", "info") {
		i.console.Successf("Docker 守护进程: 运行中")
	} else {
		i.console.Warnf("Docker 守护进程未响应，可能需要重新登录或执行 systemctl start docker")
	}

	if out, err := i.runner.Output(ctx, "docker", "compose", "version"); err == nil {
		i.console.Successf("Docker Compose: %s", trimLine(out))
	} else if out, err := i.runner.Output(ctx, "docker-compose", "--version"); err == nil {
		i.console.Successf("Docker Compose: %s", trimLine(out))
	} else {
		return fmt.Errorf("compose verification failed: %w", err)
	}

	i.console.Successf("安装完成 🎉")
	return nil
}

func trimLine(s string) string {
	for idx, r := range s {
		if r == '\n' {
			return s[:idx]
		}
	}
	return s
}

// stepTimeout bounds a single package manager invocation. Package downloads
// can be slow on cold mirrors, so this is deliberately generous.
const stepTimeout = 10 * time.Minute

func stepContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, stepTimeout)
}
