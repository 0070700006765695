// Package wizard implements the interactive configuration flow that
// produces the node's .env file.
package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Kind selects the validation applied to a field's answer.
type Kind string

const (
	KindText Kind = ""     // 任意文本
	KindPort Kind = "port" // 1-65535 端口号
	KindIP   Kind = "ip"   // IPv4 地址
	KindPath Kind = "path" // 父目录必须存在的路径
	KindUint Kind = "uint" // 非负整数
)

// Field is one question the wizard asks.
type Field struct {
	Key         string `yaml:"key"`         // 写入 .env 的键名
	Prompt      string `yaml:"prompt"`      // 提问文案
	Description string `yaml:"description"` // 提问前的说明
	Default     string `yaml:"default"`     // 回车采用的默认值
	Kind        Kind   `yaml:"kind"`        // 校验类型
}

// Group is a themed section of questions.
type Group struct {
	Title  string  `yaml:"title"`
	Intro  string  `yaml:"intro"`
	Fields []Field `yaml:"fields"`

	// PortCheck re-tests every port answered in this group for local
	// availability after the group completes.
	PortCheck bool `yaml:"port_check"`
}

var fieldValidator = validator.New()

// ValidateAnswer checks a raw answer against the field's kind. The returned
// error message is shown to the user directly.
func (f Field) ValidateAnswer(value string) error {
	switch f.Kind {
	case KindPort:
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("请输入有效的端口号")
		}
		if err := fieldValidator.Var(port, "gte=1,lte=65535"); err != nil {
			return fmt.Errorf("端口必须在 1 到 65535 之间")
		}
	case KindIP:
		if err := fieldValidator.Var(value, "ip4_addr"); err != nil {
			return fmt.Errorf("请输入有效的 IPv4 地址")
		}
	case KindPath:
		if value == "" {
			return fmt.Errorf("路径不能为空")
		}
		parent := filepath.Dir(value)
		if _, err := os.Stat(parent); err != nil {
			return fmt.Errorf("父目录不存在: %s", parent)
		}
	case KindUint:
		if _, err := strconv.ParseUint(value, 10, 64); err != nil {
			return fmt.Errorf("请输入非负整数")
		}
	}
	return nil
}

// LoadGroups reads field groups from a YAML file, letting operators adjust
// the questions without rebuilding.
func LoadGroups(path string) ([]Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field definitions: %w", err)
	}

	var groups []Group
	if err := yaml.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("failed to parse field definitions: %w", err)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("field definition file contains no groups")
	}
	return groups, nil
}

// defaultDataDir matches the path style of the platform.
func defaultDataDir() string {
	if runtime.GOOS == "windows" {
		return `.\kaspa-data`
	}
	return "./kaspa-data"
}

// DefaultGroups returns the built-in question set.
func DefaultGroups() []Group {
	return []Group{
		{
			Title:     "🌐 网络配置",
			Intro:     "网络设置决定节点如何与外界通信，默认端口是 Kaspa 节点的标准端口。",
			PortCheck: true,
			Fields: []Field{
				{
					Key:         "P2P_PORT",
					Prompt:      "P2P 端口",
					Description: "用于与其他 Kaspa 节点进行点对点通信。",
					Default:     "16111",
					Kind:        KindPort,
				},
				{
					Key:         "GRPC_PORT",
					Prompt:      "gRPC 端口",
					Description: "提供 gRPC API 访问（主网: 16110）。",
					Default:     "16110",
					Kind:        KindPort,
				},
				{
					Key:         "WRPC_BORSH_PORT",
					Prompt:      "wRPC Borsh 端口",
					Description: "提供 Borsh 编码的 wRPC 访问（主网: 17110）。",
					Default:     "17110",
					Kind:        KindPort,
				},
				{
					Key:         "WRPC_JSON_PORT",
					Prompt:      "wRPC JSON 端口",
					Description: "提供 JSON 编码的 wRPC 访问（主网: 18110）。",
					Default:     "18110",
					Kind:        KindPort,
				},
				{
					Key:         "EXTERNAL_IP",
					Prompt:      "对外 IP 地址",
					Description: "使用 0.0.0.0 接受任意来源连接，或填写本机局域网 IP。",
					Default:     "0.0.0.0",
					Kind:        KindIP,
				},
			},
		},
		{
			Title: "🐳 容器配置",
			Intro: "容器设置决定 Docker 容器的运行方式。",
			Fields: []Field{
				{
					Key:         "CONTAINER_NAME",
					Prompt:      "容器名称",
					Description: "Docker 容器的名称，必须唯一。",
					Default:     "kaspa-node",
				},
				{
					Key:         "IMAGE_NAME",
					Prompt:      "镜像名称",
					Description: "Docker 镜像名称，一般无需修改。",
					Default:     "local/research-pad",
				},
				{
					Key:         "IMAGE_TAG",
					Prompt:      "镜像标签",
					Description: "Docker 镜像的版本标签。",
					Default:     "latest",
				},
			},
		},
		{
			Title: "💾 数据存储配置",
			Intro: "数据设置决定节点区块数据的存放位置。",
			Fields: []Field{
				{
					Key:         "DATA_VOLUME_PATH",
					Prompt:      "数据目录",
					Description: "节点区块链数据在宿主机上的存储目录。",
					Default:     defaultDataDir(),
					Kind:        KindPath,
				},
				{
					Key:         "APP_DATA_PATH",
					Prompt:      "容器内数据路径",
					Description: "容器内部的数据路径，一般无需修改。",
					Default:     "/app/data",
				},
			},
		},
		{
			Title: "⚙️ 系统配置",
			Intro: "系统设置控制 DNS 与容器运行用户。",
			Fields: []Field{
				{
					Key:         "DNS_PRIMARY",
					Prompt:      "首选 DNS 服务器",
					Description: "节点进行网络查询时使用的 DNS 服务器。",
					Default:     "8.8.8.8",
					Kind:        KindIP,
				},
				{
					Key:         "DNS_SECONDARY",
					Prompt:      "备用 DNS 服务器",
					Description: "首选不可用时的备用 DNS 服务器。",
					Default:     "1.1.1.1",
					Kind:        KindIP,
				},
				{
					Key:         "USER_ID",
					Prompt:      "用户 ID",
					Description: "容器运行用户的 UID（0 为 root，一般无需修改）。",
					Default:     "0",
					Kind:        KindUint,
				},
				{
					Key:         "GROUP_ID",
					Prompt:      "用户组 ID",
					Description: "容器运行用户的 GID（0 为 root，一般无需修改）。",
					Default:     "0",
					Kind:        KindUint,
				},
			},
		},
		{
			Title: "🔧 资源限制",
			Intro: "资源限制控制节点可占用的系统资源。",
			Fields: []Field{
				{
					Key:         "ULIMIT_SOFT",
					Prompt:      "文件描述符软限制",
					Description: "更高的值允许更多连接，但占用更多资源。",
					Default:     "1048576",
					Kind:        KindUint,
				},
				{
					Key:         "ULIMIT_HARD",
					Prompt:      "文件描述符硬限制",
					Description: "软限制不能超过此值。",
					Default:     "1048576",
					Kind:        KindUint,
				},
			},
		},
		{
			Title: "❤️ 健康检查配置",
			Intro: "健康检查设置控制 Docker 监测节点健康状态的频率。",
			Fields: []Field{
				{
					Key:         "HEALTH_CHECK_INTERVAL",
					Prompt:      "健康检查间隔（如 30s）",
					Description: "两次健康检查之间的时间间隔。",
					Default:     "30s",
				},
				{
					Key:         "HEALTH_CHECK_TIMEOUT",
					Prompt:      "健康检查超时（如 5s）",
					Description: "单次检查的超时时间。",
					Default:     "5s",
				},
				{
					Key:         "HEALTH_CHECK_RETRIES",
					Prompt:      "标记为不健康前的重试次数",
					Description: "连续失败达到该次数后容器被标记为不健康。",
					Default:     "20",
					Kind:        KindUint,
				},
				{
					Key:         "HEALTH_CHECK_START_PERIOD",
					Prompt:      "健康检查启动宽限期（如 60s）",
					Description: "容器启动后暂不计入失败的时间窗口。",
					Default:     "60s",
				},
			},
		},
	}
}
