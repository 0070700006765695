// Package html provides HTML report generation for check results.
// It implements the report.ReportWriter interface to generate .html files
// with the check outcomes and the hardware evaluation.
package html

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"kaspa-setup-tool/internal/model"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Writer implements report.ReportWriter for HTML format.
type Writer struct{}

// TemplateData holds all data passed to the HTML template.
type TemplateData struct {
	Title       string
	CheckTime   string
	Duration    string
	Summary     *model.CheckSummary
	Checks      []*CheckData
	Hardware    []*FactData
	Score       *model.PerformanceScore
	AllPassed   bool
	Version     string
	GeneratedAt string
}

// CheckData represents one check formatted for template rendering.
type CheckData struct {
	Name        string
	Status      string
	StatusClass string
	Detail      string
}

// FactData is one row of the hardware table.
type FactData struct {
	Label string
	Value string
}

// NewWriter creates a new HTML report writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "html"
}

// Write generates an HTML report from the check result.
func (w *Writer) Write(result *model.PreflightResult, outputPath string) error {
	if result == nil {
		return fmt.Errorf("check result is nil")
	}

	if !strings.HasSuffix(strings.ToLower(outputPath), ".html") {
		outputPath = outputPath + ".html"
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	tmpl, err := template.ParseFS(embeddedTemplates, "templates/report.html")
	if err != nil {
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := tmpl.Execute(file, w.buildTemplateData(result)); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func (w *Writer) buildTemplateData(result *model.PreflightResult) *TemplateData {
	data := &TemplateData{
		Title:       "Kaspa 节点环境检查报告",
		CheckTime:   result.StartedAt.Format("2006-01-02 15:04:05"),
		Duration:    result.Duration.Round(time.Millisecond).String(),
		Summary:     result.Summary,
		Score:       result.Score,
		AllPassed:   result.Summary != nil && result.Summary.AllPassed(),
		Version:     result.Version,
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
	}

	for _, cr := range result.Checks {
		cd := &CheckData{Name: cr.Name, Detail: cr.Detail}
		switch {
		case cr.Passed:
			cd.Status = "通过"
			cd.StatusClass = "pass"
		case cr.Optional:
			cd.Status = "警告"
			cd.StatusClass = "warn"
		default:
			cd.Status = "未通过"
			cd.StatusClass = "fail"
		}
		data.Checks = append(data.Checks, cd)
	}

	if profile := result.Profile; profile != nil {
		data.Hardware = []*FactData{
			{"操作系统", string(profile.OS)},
			{"系统版本", profile.OSVersion},
			{"CPU 型号", profile.CPUModel},
			{"物理核心", fmt.Sprintf("%d", profile.CPUPhysical)},
			{"逻辑核心", fmt.Sprintf("%d", profile.CPULogical)},
			{"内存总量", fmt.Sprintf("%.1f GiB", model.GiB(profile.MemoryTotal))},
			{"存储类型", profile.Storage.DisplayName()},
			{"磁盘可用", fmt.Sprintf("%.1f GiB", model.GiB(profile.DiskFree))},
		}
	}

	return data
}
