package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kaspa-setup-tool/internal/wizard"
)

// Command flags
var (
	wizardOutput string // Env file output path
	wizardFields string // Custom field definition file
)

// wizardCmd represents the wizard command.
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "交互式生成 .env 配置文件",
	Long: `逐步询问节点的网络、容器、存储、系统、资源与健康检查配置，
每一项都提供推荐默认值，直接回车即可采用。

向导会实时校验端口、IP 地址与路径，并在网络配置完成后
检测所选端口是否已被占用。确认摘要后生成 docker compose
使用的 .env 文件。

必须在包含 docker-compose.yml 的部署目录中运行。

示例:
  kaspa-setup wizard
  kaspa-setup wizard -d /opt/kaspa
  kaspa-setup wizard --fields my-fields.yaml -o /opt/kaspa/.env`,
	Run: runWizard,
}

func init() {
	rootCmd.AddCommand(wizardCmd)

	wizardCmd.Flags().StringVarP(&wizardOutput, "output", "o", "", "生成的 .env 文件路径（默认取配置中的 wizard.output_path）")
	wizardCmd.Flags().StringVar(&wizardFields, "fields", "", "自定义字段定义 YAML 文件路径")
}

// runWizard executes the interactive configuration workflow.
func runWizard(cmd *cobra.Command, args []string) {
	cfg, logger := loadConfig()
	if wizardOutput != "" {
		cfg.Wizard.OutputPath = wizardOutput
	}
	if wizardFields != "" {
		cfg.Wizard.FieldsPath = wizardFields
	}

	ctx, stop := signalContext()
	defer stop()

	w, err := wizard.NewWizard(cfg, newConsole(), logger, wizard.WithWorkDir(workDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 初始化向导失败: %v\n", err)
		os.Exit(1)
	}

	if err := w.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			exitCancelled()
		}
		logger.Error().Err(err).Msg("wizard failed")
		fmt.Fprintf(os.Stderr, "❌ 配置向导失败: %v\n", err)
		os.Exit(1)
	}
}
