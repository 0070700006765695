// Package excel provides Excel report generation for check results.
// It implements the report.ReportWriter interface to generate .xlsx files
// with the check outcomes and the hardware evaluation.
package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"kaspa-setup-tool/internal/model"
)

const (
	// Sheet names
	sheetChecks   = "检查结果"
	sheetHardware = "硬件评分"

	// Default sheet to remove
	defaultSheet = "Sheet1"

	// Colors for conditional formatting (RGB without #)
	colorHeaderBg = "4472C4" // Blue background for header
	colorHeaderFg = "FFFFFF" // White text for header
	colorPassBg   = "C6EFCE" // Green background for passed checks
	colorPassFg   = "006100" // Dark green text for passed checks
	colorFailBg   = "FFC7CE" // Red background for failed checks
	colorFailFg   = "9C0006" // Dark red text for failed checks
	colorWarnBg   = "FFEB9C" // Yellow background for optional failures
	colorWarnFg   = "9C6500" // Dark yellow text for optional failures

	// Column widths
	defaultColWidth = 18.0
	wideColWidth    = 50.0
)

// Writer implements report.ReportWriter for Excel format.
type Writer struct{}

// NewWriter creates a new Excel report writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "excel"
}

// Write generates an Excel report from the check result.
func (w *Writer) Write(result *model.PreflightResult, outputPath string) error {
	if result == nil {
		return fmt.Errorf("check result is nil")
	}

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath = outputPath + ".xlsx"
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeChecksSheet(f, result); err != nil {
		return err
	}
	if err := w.writeHardwareSheet(f, result); err != nil {
		return err
	}

	f.DeleteSheet(defaultSheet)
	if idx, err := f.GetSheetIndex(sheetChecks); err == nil {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save Excel report: %w", err)
	}
	return nil
}

func (w *Writer) writeChecksSheet(f *excelize.File, result *model.PreflightResult) error {
	if _, err := f.NewSheet(sheetChecks); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheetChecks, err)
	}

	hStyle, err := headerStyle(f)
	if err != nil {
		return err
	}
	passStyle, failStyle, warnStyle, err := statusStyles(f)
	if err != nil {
		return err
	}

	// Header row
	headers := []string{"检查项", "结果", "详情"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheetChecks, cell, h)
		f.SetCellStyle(sheetChecks, cell, cell, hStyle)
	}

	for row, cr := range result.Checks {
		nameCell, _ := excelize.CoordinatesToCellName(1, row+2)
		statusCell, _ := excelize.CoordinatesToCellName(2, row+2)
		detailCell, _ := excelize.CoordinatesToCellName(3, row+2)

		f.SetCellValue(sheetChecks, nameCell, cr.Name)
		f.SetCellValue(sheetChecks, detailCell, cr.Detail)

		switch {
		case cr.Passed:
			f.SetCellValue(sheetChecks, statusCell, "通过")
			f.SetCellStyle(sheetChecks, statusCell, statusCell, passStyle)
		case cr.Optional:
			f.SetCellValue(sheetChecks, statusCell, "警告")
			f.SetCellStyle(sheetChecks, statusCell, statusCell, warnStyle)
		default:
			f.SetCellValue(sheetChecks, statusCell, "未通过")
			f.SetCellStyle(sheetChecks, statusCell, statusCell, failStyle)
		}
	}

	// Summary rows under the table
	base := len(result.Checks) + 3
	f.SetCellValue(sheetChecks, fmt.Sprintf("A%d", base), "检查总数")
	f.SetCellValue(sheetChecks, fmt.Sprintf("B%d", base), result.Summary.Total)
	f.SetCellValue(sheetChecks, fmt.Sprintf("A%d", base+1), "通过")
	f.SetCellValue(sheetChecks, fmt.Sprintf("B%d", base+1), result.Summary.Passed)
	f.SetCellValue(sheetChecks, fmt.Sprintf("A%d", base+2), "未通过")
	f.SetCellValue(sheetChecks, fmt.Sprintf("B%d", base+2), result.Summary.Failed)
	f.SetCellValue(sheetChecks, fmt.Sprintf("A%d", base+3), "检查时间")
	f.SetCellValue(sheetChecks, fmt.Sprintf("B%d", base+3), result.StartedAt.Format("2006-01-02 15:04:05"))

	f.SetColWidth(sheetChecks, "A", "A", defaultColWidth)
	f.SetColWidth(sheetChecks, "B", "B", defaultColWidth)
	f.SetColWidth(sheetChecks, "C", "C", wideColWidth)
	return nil
}

func (w *Writer) writeHardwareSheet(f *excelize.File, result *model.PreflightResult) error {
	if _, err := f.NewSheet(sheetHardware); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheetHardware, err)
	}

	hStyle, err := headerStyle(f)
	if err != nil {
		return err
	}
	for col, h := range []string{"指标", "数值"} {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheetHardware, cell, h)
		f.SetCellStyle(sheetHardware, cell, cell, hStyle)
	}

	profile := result.Profile
	score := result.Score
	rows := [][2]interface{}{
		{"操作系统", string(profile.OS)},
		{"系统版本", profile.OSVersion},
		{"CPU 型号", profile.CPUModel},
		{"物理核心", profile.CPUPhysical},
		{"逻辑核心", profile.CPULogical},
		{"内存总量 (GiB)", fmt.Sprintf("%.1f", model.GiB(profile.MemoryTotal))},
		{"存储类型", profile.Storage.DisplayName()},
		{"磁盘可用 (GiB)", fmt.Sprintf("%.1f", model.GiB(profile.DiskFree))},
	}
	if score != nil {
		rows = append(rows,
			[2]interface{}{"CPU 评分", score.CPU},
			[2]interface{}{"内存评分", score.Memory},
			[2]interface{}{"存储评分", score.Storage},
			[2]interface{}{"综合评分", fmt.Sprintf("%.1f", score.Overall)},
			[2]interface{}{"性能等级", string(score.Tier)},
		)
	}

	for i, row := range rows {
		f.SetCellValue(sheetHardware, fmt.Sprintf("A%d", i+2), row[0])
		f.SetCellValue(sheetHardware, fmt.Sprintf("B%d", i+2), row[1])
	}

	f.SetColWidth(sheetHardware, "A", "A", defaultColWidth)
	f.SetColWidth(sheetHardware, "B", "B", wideColWidth)
	return nil
}

func headerStyle(f *excelize.File) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{colorHeaderBg}, Pattern: 1},
		Font: &excelize.Font{Bold: true, Color: colorHeaderFg},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create header style: %w", err)
	}
	return style, nil
}

func statusStyles(f *excelize.File) (pass, fail, warn int, err error) {
	pass, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{colorPassBg}, Pattern: 1},
		Font: &excelize.Font{Color: colorPassFg},
	})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to create pass style: %w", err)
	}
	fail, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{colorFailBg}, Pattern: 1},
		Font: &excelize.Font{Color: colorFailFg},
	})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to create fail style: %w", err)
	}
	warn, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{colorWarnBg}, Pattern: 1},
		Font: &excelize.Font{Color: colorWarnFg},
	})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to create warn style: %w", err)
	}
	return pass, fail, warn, nil
}
