// Package config provides configuration management for the setup tool.
package config

import "time"

// Config is the top-level configuration structure.
type Config struct {
	Checks  ChecksConfig  `mapstructure:"checks"`
	Install InstallConfig `mapstructure:"install"`
	Wizard  WizardConfig  `mapstructure:"wizard"`
	Report  ReportConfig  `mapstructure:"report"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ChecksConfig controls the pre-flight requirement checks.
type ChecksConfig struct {
	Ports          []int         `mapstructure:"ports" validate:"min=1,dive,gte=1,lte=65535"` // 节点需要的端口
	RequiredFiles  []string      `mapstructure:"required_files" validate:"min=1"`             // 部署目录必备文件
	MinDiskGiB     float64       `mapstructure:"min_disk_gib" validate:"gt=0"`                // 最小可用磁盘空间
	MinMemoryGiB   float64       `mapstructure:"min_memory_gib" validate:"gt=0"`              // 最小可用内存
	ProbeHost      string        `mapstructure:"probe_host" validate:"required,hostname"`     // DNS 探测主机
	ProbeURL       string        `mapstructure:"probe_url" validate:"required,url"`           // HTTPS 探测地址
	ProbeTimeout   time.Duration `mapstructure:"probe_timeout" validate:"gt=0"`               // 网络探测超时
	CommandTimeout time.Duration `mapstructure:"command_timeout" validate:"gt=0"`             // 外部命令超时
}

// InstallConfig controls the runtime installer.
type InstallConfig struct {
	ComposeFallbackVersion string        `mapstructure:"compose_fallback_version" validate:"required"` // 查询失败时的 Compose 版本
	DownloadTimeout        time.Duration `mapstructure:"download_timeout" validate:"gt=0"`             // 二进制下载超时
	Retry                  RetryConfig   `mapstructure:"retry"`
}

// RetryConfig controls HTTP retry behavior for downloads and release lookups.
type RetryConfig struct {
	MaxRetries int           `mapstructure:"max_retries" validate:"gte=0,lte=10"` // 最大重试次数
	BaseDelay  time.Duration `mapstructure:"base_delay" validate:"gte=0"`         // 重试基础延迟
}

// WizardConfig controls the interactive configuration wizard.
type WizardConfig struct {
	OutputPath  string `mapstructure:"output_path" validate:"required"`  // 生成的环境文件路径
	FieldsPath  string `mapstructure:"fields_path"`                      // 自定义字段定义文件，可选
	ComposeFile string `mapstructure:"compose_file" validate:"required"` // 必须存在的编排文件
}

// ReportConfig controls check report export.
type ReportConfig struct {
	OutputDir string   `mapstructure:"output_dir" validate:"required"`           // 报告输出目录
	Formats   []string `mapstructure:"formats" validate:"dive,oneof=excel html"` // 导出格式
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"` // 日志级别
	Format string `mapstructure:"format" validate:"oneof=console json"`         // 日志格式
}
