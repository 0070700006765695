package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"kaspa-setup-tool/internal/hwinfo"
	"kaspa-setup-tool/internal/model"
	"kaspa-setup-tool/internal/report"
	"kaspa-setup-tool/internal/service"
)

// Command flags
var (
	checkFormats   []string // Report formats (excel, html)
	checkOutputDir string   // Report output directory
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "执行部署前环境检查",
	Long: `对当前主机执行完整的部署前检查，包括：
1. 操作系统与运行环境
2. Docker 与 Docker Compose 是否可用
3. 守护进程连通性
4. 节点端口占用情况
5. 磁盘空间与可用内存
6. 部署目录必备文件
7. DNS 解析与 HTTPS 连通性（后者仅作提示）

检查完成后按 CPU/内存/存储给出硬件评分与性能等级。
所有检查项通过时退出码为 0，否则为 1。

示例:
  # 在当前目录执行检查
  kaspa-setup check

  # 指定部署目录
  kaspa-setup check -d /opt/kaspa

  # 检查并导出报告
  kaspa-setup check -f excel,html -o ./reports`,
	Run: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringSliceVarP(&checkFormats, "format", "f", nil, "报告格式 (excel,html)，可用逗号分隔多个；缺省时不导出")
	checkCmd.Flags().StringVarP(&checkOutputDir, "output", "o", "", "报告输出目录")
}

// runCheck executes the pre-flight check workflow.
func runCheck(cmd *cobra.Command, args []string) {
	printBanner()
	cfg, logger := loadConfig()

	ctx, stop := signalContext()
	defer stop()

	cons := newConsole()
	probe := hwinfo.NewSystemProbe(logger)
	checker := service.NewChecker(cfg, probe, cons, logger,
		service.WithVersion(Version),
		service.WithWorkDir(workDir))

	result, err := checker.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			exitCancelled()
		}
		logger.Error().Err(err).Msg("check run failed")
		fmt.Fprintf(os.Stderr, "❌ 检查执行失败: %v\n", err)
		os.Exit(1)
	}

	if len(checkFormats) > 0 {
		outputDir := cfg.Report.OutputDir
		if checkOutputDir != "" {
			outputDir = checkOutputDir
		}
		if err := exportReports(result, outputDir, logger); err != nil {
			fmt.Fprintf(os.Stderr, "❌ 导出报告失败: %v\n", err)
			os.Exit(1)
		}
	}

	if !result.Summary.AllPassed() {
		os.Exit(1)
	}
}

// exportReports writes the result in every requested format.
func exportReports(result *model.PreflightResult, outputDir string, logger zerolog.Logger) error {
	registry := report.NewRegistry()
	baseName := "kaspa_check_report_" + timestamp(result.StartedAt)

	for _, format := range checkFormats {
		writer, err := registry.Get(format)
		if err != nil {
			return err
		}
		outputPath := filepath.Join(outputDir, baseName)
		if err := writer.Write(result, outputPath); err != nil {
			return fmt.Errorf("failed to write %s report: %w", writer.Format(), err)
		}
		logger.Info().Str("format", writer.Format()).Str("path", outputPath).Msg("report written")
		fmt.Printf("📊 %s 报告已导出到 %s\n", writer.Format(), outputDir)
	}
	return nil
}
