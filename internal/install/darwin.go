package install

import (
	"context"
	"fmt"
	"os/exec"
)

// installDarwin installs Docker Desktop through Homebrew. There is no
// supported unattended path without it.
func (i *Installer) installDarwin(ctx context.Context) error {
	if _, err := exec.LookPath("brew"); err != nil {
		return fmt.Errorf("Homebrew is required on macOS, install it from https://brew.sh first")
	}

	cctx, cancel := stepContext(ctx)
	defer cancel()

	if err := i.runner.Step(cctx, "安装 Docker Desktop", "brew", "install", "--cask", "docker"); err != nil {
		return err
	}

	i.console.Warnf("请从启动台打开 Docker Desktop 并完成首次初始化")
	return nil
}

// windowsGuidance explains the manual path. Docker Desktop on Windows needs
// WSL2 setup and a reboot, which cannot be driven from here.
func (i *Installer) windowsGuidance() error {
	i.console.Infof("Windows 请手动安装 Docker Desktop:")
	i.console.Printf("   1. 下载 https://www.docker.com/products/docker-desktop/")
	i.console.Printf("   2. 安装时启用 WSL2 后端")
	i.console.Printf("   3. 重启后运行 docker --version 验证")
	return fmt.Errorf("automatic installation is not supported on Windows")
}
