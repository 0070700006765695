// Package cmd provides CLI commands for the Kaspa setup tool.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"kaspa-setup-tool/internal/config"
	"kaspa-setup-tool/internal/console"
)

// Version information, injected at build time via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Global flags
var (
	cfgFile  string // Config file path, optional
	logLevel string // Log level
	workDir  string // Deployment directory
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "kaspa-setup",
	Short: "Kaspa Docker 节点部署工具 - 安装、检查与配置一站式完成",
	Long: `Kaspa Docker 节点部署工具帮助你在一台新主机上跑起 Kaspa 节点：

  install  检测操作系统并通过原生包管理器安装 Docker 与 Docker Compose
  check    执行部署前环境检查并评估硬件性能等级
  wizard   交互式向导，生成 docker compose 所需的 .env 配置文件

主要功能:
  - 支持 Debian/Ubuntu、RHEL 系、Arch 与 macOS 的 Docker 安装
  - 检查端口占用、磁盘、内存、必备文件与网络连通性
  - 按 CPU/内存/存储给出硬件评分与同步能力建议
  - 检查结果可导出为 Excel 和 HTML 报告`,
	Version: Version,
	// Run displays help when called without any subcommands
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command and its flags.
func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径（缺省时使用内置默认值）")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "日志级别 (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&workDir, "dir", "d", ".", "Kaspa Docker 部署目录")

	// Customize version template
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadConfig loads the configuration and builds the logger from it.
// The --log-level flag overrides the config file setting.
func loadConfig() (*config.Config, zerolog.Logger) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		tmpLogger := setupLogger("error", "console")
		tmpLogger.Error().Err(err).Str("path", cfgFile).Msg("failed to load config")
		fmt.Fprintf(os.Stderr, "❌ 加载配置失败: %v\n", err)
		os.Exit(1)
	}

	level := cfg.Logging.Level
	if logLevel != "info" { // If explicitly set via command line
		level = logLevel
	}
	logger := setupLogger(level, cfg.Logging.Format)
	logger.Debug().
		Str("config_path", cfgFile).
		Str("log_level", level).
		Str("log_format", cfg.Logging.Format).
		Msg("configuration loaded successfully")
	return cfg, logger
}

// setupLogger creates a zerolog logger with the specified level and format.
func setupLogger(level string, format string) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// Select output format based on configuration
	var output io.Writer
	if format == "json" {
		// JSON format - structured logging for log aggregation systems
		output = os.Stderr
	} else {
		// Console format - human-readable output for development
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
			NoColor:    false,
		}
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// signalContext returns a context cancelled by Ctrl-C or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// newConsole builds the interactive console over the process streams.
func newConsole() *console.Console {
	return console.New(os.Stdin, os.Stdout)
}

// printBanner prints the application banner.
func printBanner() {
	fmt.Printf("🚀 Kaspa Docker 节点部署工具 %s\n", Version)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
}

// GetVersionInfo returns formatted version information.
func GetVersionInfo() string {
	return Version + "\n" +
		"Build Time: " + BuildTime + "\n" +
		"Git Commit: " + GitCommit + "\n" +
		"Go Version: " + runtime.Version() + "\n" +
		"OS/Arch: " + runtime.GOOS + "/" + runtime.GOARCH
}

// exitCancelled reports a user abort uniformly across commands.
func exitCancelled() {
	fmt.Fprintln(os.Stderr, "\n⚠️  操作已被用户取消")
	os.Exit(1)
}

// timestamp formats a report file suffix.
func timestamp(t time.Time) string {
	return t.Format("20060102_150405")
}
