package html

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"kaspa-setup-tool/internal/model"
)

func sampleResult() *model.PreflightResult {
	result := model.NewPreflightResult(time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	result.Version = "1.0.0"
	result.AddCheck(&model.CheckResult{Name: "操作系统", Passed: true, Detail: "Ubuntu 22.04"})
	result.AddCheck(&model.CheckResult{Name: "端口 16111", Passed: false, Detail: "端口被占用"})
	result.AddCheck(&model.CheckResult{Name: "HTTPS 连通性", Passed: false, Optional: true, Detail: "超时"})
	result.Profile = &model.HostProfile{
		OS:          model.OSLinux,
		OSVersion:   "Ubuntu 22.04.3 LTS",
		CPUPhysical: 8,
		CPULogical:  16,
		MemoryTotal: 32 << 30,
		Storage:     model.StorageNVMe,
		DiskFree:    500 << 30,
	}
	result.Score = &model.PerformanceScore{
		CPU: 80, Memory: 90, Storage: 100,
		Overall: 90, Tier: model.TierExcellent, Adequate: true,
	}
	result.Finalize(result.StartedAt.Add(3 * time.Second))
	return result
}

func TestWrite(t *testing.T) {
	w := NewWriter()
	path := filepath.Join(t.TempDir(), "report.html")

	if err := w.Write(sampleResult(), path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"Kaspa 节点环境检查报告",
		"操作系统",
		"端口 16111",
		"端口被占用",
		`class="badge pass"`,
		`class="badge fail"`,
		`class="badge warn"`,
		"NVMe SSD",
		"Excellent",
		"90.0",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWrite_AddsExtension(t *testing.T) {
	w := NewWriter()
	path := filepath.Join(t.TempDir(), "report")

	if err := w.Write(sampleResult(), path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := os.Stat(path + ".html"); err != nil {
		t.Error("Write() should append the .html extension")
	}
}

func TestWrite_CreatesOutputDir(t *testing.T) {
	w := NewWriter()
	path := filepath.Join(t.TempDir(), "nested", "dir", "report.html")

	if err := w.Write(sampleResult(), path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("Write() should create missing directories")
	}
}

func TestWrite_NilResult(t *testing.T) {
	w := NewWriter()
	if err := w.Write(nil, filepath.Join(t.TempDir(), "report.html")); err == nil {
		t.Error("Write(nil) should fail")
	}
}

func TestFormat(t *testing.T) {
	if got := NewWriter().Format(); got != "html" {
		t.Errorf("Format() = %q, want html", got)
	}
}
