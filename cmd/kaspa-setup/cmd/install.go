package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kaspa-setup-tool/internal/install"
)

// installCmd represents the install command.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "安装 Docker 与 Docker Compose",
	Long: `检测当前操作系统并通过原生包管理器安装 Docker 运行时：

  - Debian/Ubuntu: 配置 Docker 官方 apt 源后安装 docker-ce
  - CentOS/RHEL/Fedora: 通过 yum 与官方源安装
  - Arch/Manjaro: 通过 pacman 安装发行版软件包
  - macOS: 通过 Homebrew 安装 Docker Desktop
  - Windows: 给出手动安装指引

已安装的组件会被自动跳过。当系统缺少 Compose 插件时，
会从 GitHub Releases 下载独立的 docker-compose 二进制。

示例:
  kaspa-setup install
  kaspa-setup install --log-level debug`,
	Run: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

// runInstall executes the runtime installation workflow.
func runInstall(cmd *cobra.Command, args []string) {
	printBanner()
	cfg, logger := loadConfig()

	ctx, stop := signalContext()
	defer stop()

	installer := install.NewInstaller(cfg, newConsole(), logger)
	if err := installer.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			exitCancelled()
		}
		logger.Error().Err(err).Msg("installation failed")
		fmt.Fprintf(os.Stderr, "❌ 安装失败: %v\n", err)
		os.Exit(1)
	}
}
