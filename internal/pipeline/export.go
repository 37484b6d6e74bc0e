package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"feedback-dashboard/internal/model"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ExportResult represents the result of an export operation
type ExportResult struct {
	Format      string    `json:"format"`
	Path        string    `json:"path,omitempty"`
	RecordCount int       `json:"record_count"`
	ExportedAt  time.Time `json:"exported_at"`
}

// ExportFormat determines the export format from a file name, defaulting to CSV.
func ExportFormat(fileName string) string {
	if strings.ToLower(filepath.Ext(fileName)) == ".json" {
		return FormatJSON
	}
	return FormatCSV
}

// ExportSeries writes the sentiment counts as a Sentiment,Count frame.
func ExportSeries(w io.Writer, series []model.ChartPoint, format string) (ExportResult, error) {
	var err error
	switch format {
	case FormatCSV:
		err = exportToCSV(w, series)
	case FormatJSON:
		err = exportToJSON(w, series)
	default:
		return ExportResult{}, fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return ExportResult{}, err
	}

	return ExportResult{
		Format:      format,
		RecordCount: len(series),
		ExportedAt:  time.Now().UTC(),
	}, nil
}

// ExportSeriesToFile writes the sentiment counts to path, choosing the format from its extension.
func ExportSeriesToFile(path string, series []model.ChartPoint) (ExportResult, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return ExportResult{}, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	result, err := ExportSeries(file, series, ExportFormat(path))
	if err != nil {
		return ExportResult{}, err
	}
	result.Path = path
	return result, nil
}

// exportToCSV exports the series to CSV format
func exportToCSV(w io.Writer, series []model.ChartPoint) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Sentiment", "Count"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, point := range series {
		if err := writer.Write([]string{point.Label, strconv.Itoa(point.Count)}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

type exportRow struct {
	Sentiment string `json:"Sentiment"`
	Count     int    `json:"Count"`
}

// exportToJSON exports the series to JSON format
func exportToJSON(w io.Writer, series []model.ChartPoint) error {
	rows := make([]exportRow, 0, len(series))
	for _, point := range series {
		rows = append(rows, exportRow{Sentiment: point.Label, Count: point.Count})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(rows); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
