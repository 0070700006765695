// Package report provides report generation for pre-flight check results.
// It defines the ReportWriter interface and a registry for the supported
// output formats (Excel, HTML).
package report

import (
	"kaspa-setup-tool/internal/model"
)

// ReportWriter defines the interface for exporting check results.
// Implementations write a PreflightResult to a file in their format.
type ReportWriter interface {
	// Write generates a report from the check result and saves it to the
	// specified output path. The path should include the file extension
	// appropriate for the format.
	//
	// Returns an error if the report generation or file writing fails.
	Write(result *model.PreflightResult, outputPath string) error

	// Format returns the format identifier for this writer.
	// Common values are "excel" and "html".
	Format() string
}
