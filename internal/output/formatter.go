// internal/output/formatter.go
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jciason/CMSScanner/internal/core"
	"github.com/jciason/CMSScanner/internal/core/logger"
	"github.com/jciason/CMSScanner/internal/probe"
)

// FormatReport formats a probe report into the specified format.
func FormatReport(report *probe.Report, outputFormat string) (string, error) {
	log := logger.GetLogger()
	switch outputFormat {
	case "json":
		jsonData, err := json.MarshalIndent(report, "", "    ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(jsonData), nil
	case "txt":
		return report.String(), nil
	case "csv":
		var b strings.Builder
		writer := csv.NewWriter(&b)
		if err := writer.Write([]string{"target", "resolved_address", "online", "http_auth", "forbidden", "proxy_auth", "standing_method", "not_found_status"}); err != nil {
			return "", fmt.Errorf("failed to write CSV header: %w", err)
		}
		row := []string{
			report.Target,
			report.ResolvedAddress,
			strconv.FormatBool(report.Online),
			strconv.FormatBool(report.HTTPAuth),
			strconv.FormatBool(report.Forbidden),
			strconv.FormatBool(report.ProxyAuth),
			report.StandingMethod,
			strconv.Itoa(report.NotFoundStatus),
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write report to CSV: %w", err)
		}
		writer.Flush()
		return b.String(), nil
	case "console":
		header := fmt.Sprintf("\n--- Probe Report for %s ---\n", report.Target)
		return header + report.String() + "\n------------------------------------", nil
	default:
		log.Errorf("Unsupported output format: %s", outputFormat)
		return "", core.ErrOutputFormat
	}
}

// WriteOutput writes content to a specified file.
func WriteOutput(filepath string, content string) error {
	log := logger.GetLogger()
	err := os.WriteFile(filepath, []byte(content), 0644)
	if err != nil {
		log.Errorf("Failed to write output to %s: %v", filepath, err)
		return core.ErrFileWrite
	}
	return nil
}
