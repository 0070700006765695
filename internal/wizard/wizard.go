package wizard

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"kaspa-setup-tool/internal/config"
	"kaspa-setup-tool/internal/console"
	"kaspa-setup-tool/internal/envfile"
)

// Wizard walks the user through every field group and writes the resulting
// environment file.
type Wizard struct {
	cfg     *config.Config
	console *console.Console
	logger  zerolog.Logger
	groups  []Group
	workDir string
}

// WizardOption configures a Wizard.
type WizardOption func(*Wizard)

// WithGroups replaces the built-in question set.
func WithGroups(groups []Group) WizardOption {
	return func(w *Wizard) {
		if len(groups) > 0 {
			w.groups = groups
		}
	}
}

// WithWorkDir sets the directory the wizard operates in.
func WithWorkDir(dir string) WizardOption {
	return func(w *Wizard) {
		if dir != "" {
			w.workDir = dir
		}
	}
}

// NewWizard creates a wizard. When the config names a custom field
// definition file it is loaded here; a broken file aborts rather than
// silently falling back.
func NewWizard(cfg *config.Config, cons *console.Console, logger zerolog.Logger, opts ...WizardOption) (*Wizard, error) {
	w := &Wizard{
		cfg:     cfg,
		console: cons,
		logger:  logger.With().Str("component", "wizard").Logger(),
		groups:  DefaultGroups(),
		workDir: ".",
	}

	if cfg.Wizard.FieldsPath != "" {
		groups, err := LoadGroups(cfg.Wizard.FieldsPath)
		if err != nil {
			return nil, err
		}
		w.groups = groups
	}

	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run executes the full wizard flow.
func (w *Wizard) Run(ctx context.Context) error {
	composePath := filepath.Join(w.workDir, w.cfg.Wizard.ComposeFile)
	if _, err := os.Stat(composePath); err != nil {
		w.console.Errorf("未找到 %s，请在 Kaspa Docker 部署目录内运行向导", w.cfg.Wizard.ComposeFile)
		return fmt.Errorf("compose file not found: %s", composePath)
	}

	w.printHeader()

	values := make(map[string]string)
	for _, group := range w.groups {
		if err := ctx.Err(); err != nil {
			return err
		}
		answers, err := w.runGroup(ctx, group)
		if err != nil {
			return err
		}
		for k, v := range answers {
			values[k] = v
		}
	}

	// An interrupt during the last group must not fall through to the save
	// sequence.
	if err := ctx.Err(); err != nil {
		return err
	}

	w.printSummary(values)

	save, err := w.console.Confirm("保存该配置？", true)
	if err != nil {
		return err
	}
	if !save {
		w.console.Warnf("配置未保存")
		return nil
	}

	outputPath := w.cfg.Wizard.OutputPath
	if !filepath.IsAbs(outputPath) {
		outputPath = filepath.Join(w.workDir, outputPath)
	}
	if envfile.Exists(outputPath) {
		overwrite, err := w.console.Confirm(fmt.Sprintf("%s 已存在，是否覆盖？", w.cfg.Wizard.OutputPath), false)
		if err != nil {
			return err
		}
		if !overwrite {
			w.console.Warnf("配置未保存")
			return nil
		}
	}

	if err := envfile.Write(outputPath, values); err != nil {
		return err
	}
	w.logger.Info().Str("path", outputPath).Msg("environment file written")
	w.console.Successf("配置已保存到 %s", w.cfg.Wizard.OutputPath)

	w.printNextSteps(values)
	return nil
}

// runGroup asks every field of a group. Groups with PortCheck repeat
// entirely when the user declines to keep conflicting ports.
func (w *Wizard) runGroup(ctx context.Context, group Group) (map[string]string, error) {
	for {
		w.console.Section(group.Title)
		if group.Intro != "" {
			w.console.Printf("%s", group.Intro)
		}

		answers := make(map[string]string, len(group.Fields))
		for _, field := range group.Fields {
			value, err := w.askField(ctx, field)
			if err != nil {
				return nil, err
			}
			answers[field.Key] = value
		}

		if !group.PortCheck {
			return answers, nil
		}

		busy := w.busyPorts(group, answers)
		if len(busy) == 0 {
			return answers, nil
		}

		w.console.Warnf("以下端口已被占用: %s", strings.Join(busy, ", "))
		w.console.Printf("可以更换端口，或先停止占用这些端口的服务。")
		keep, err := w.console.Confirm("仍然继续？", false)
		if err != nil {
			return nil, err
		}
		if keep {
			return answers, nil
		}
		// Ask the whole group again.
	}
}

// askField prompts until validation passes or the context is cancelled.
func (w *Wizard) askField(ctx context.Context, field Field) (string, error) {
	if field.Description != "" {
		w.console.Printf("\n%s", field.Description)
	}
	if field.Key == "EXTERNAL_IP" {
		w.console.Printf("检测到的本机 IP: %s", localIP())
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		value, err := w.console.Prompt(field.Prompt, field.Default)
		if err != nil {
			return "", err
		}
		if err := field.ValidateAnswer(value); err != nil {
			w.console.Errorf("%v", err)
			continue
		}
		return value, nil
	}
}

// busyPorts returns the port answers of the group that cannot be bound
// locally right now.
func (w *Wizard) busyPorts(group Group, answers map[string]string) []string {
	var busy []string
	for _, field := range group.Fields {
		if field.Kind != KindPort {
			continue
		}
		port := answers[field.Key]
		ln, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", port))
		if err != nil {
			busy = append(busy, port)
			continue
		}
		ln.Close()
	}
	return busy
}

func (w *Wizard) printHeader() {
	w.console.Section("🚀 Kaspa Docker 配置向导 🚀")
	w.console.Printf("欢迎！本向导将帮助你完成 Kaspa 节点的配置。")
	w.console.Printf("直接按回车即采用默认值（推荐新手使用）。")
}

func (w *Wizard) printSummary(values map[string]string) {
	w.console.Section("📋 配置摘要")
	w.console.Printf("你的 Kaspa 节点将使用以下配置:")

	w.console.Printf("\n网络设置:")
	w.console.Printf("  • P2P 端口: %s", values["P2P_PORT"])
	w.console.Printf("  • gRPC 端口: %s", values["GRPC_PORT"])
	w.console.Printf("  • wRPC Borsh 端口: %s", values["WRPC_BORSH_PORT"])
	w.console.Printf("  • wRPC JSON 端口: %s", values["WRPC_JSON_PORT"])
	w.console.Printf("  • 对外 IP: %s", values["EXTERNAL_IP"])

	w.console.Printf("\n容器设置:")
	w.console.Printf("  • 容器名称: %s", values["CONTAINER_NAME"])
	w.console.Printf("  • 镜像: %s:%s", values["IMAGE_NAME"], values["IMAGE_TAG"])

	w.console.Printf("\n数据存储:")
	w.console.Printf("  • 宿主机目录: %s", values["DATA_VOLUME_PATH"])
	w.console.Printf("  • 容器内路径: %s", values["APP_DATA_PATH"])

	w.console.Printf("\n系统设置:")
	w.console.Printf("  • DNS: %s, %s", values["DNS_PRIMARY"], values["DNS_SECONDARY"])
	w.console.Printf("  • 运行用户: %s:%s", values["USER_ID"], values["GROUP_ID"])
	w.console.Printf("")
}

func (w *Wizard) printNextSteps(values map[string]string) {
	w.console.Section("🚀 后续步骤")
	w.console.Printf("节点配置完成！")
	w.console.Printf("\n启动节点:")
	w.console.Printf("  docker-compose up -d")
	w.console.Printf("\n查看节点状态:")
	w.console.Printf("  docker-compose ps")
	w.console.Printf("  docker-compose logs -f")
	w.console.Printf("\n停止节点:")
	w.console.Printf("  docker-compose down")
	w.console.Printf("\n节点服务地址:")
	w.console.Printf("  • gRPC API: localhost:%s", values["GRPC_PORT"])
	w.console.Printf("  • wRPC Borsh: ws://localhost:%s", values["WRPC_BORSH_PORT"])
	w.console.Printf("  • wRPC JSON: ws://localhost:%s", values["WRPC_JSON_PORT"])
}

// localIP discovers the outbound interface address without sending traffic.
// The UDP dial never transmits; it only selects a route.
func localIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "0.0.0.0"
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "0.0.0.0"
	}
	return addr.IP.String()
}
