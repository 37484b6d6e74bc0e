// Package render formats dashboard results for the command line.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"feedback-dashboard/internal/model"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45")).
			Bold(true).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(22)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true)

	cellStyle = lipgloss.NewStyle().PaddingRight(2)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))
)

// Report is the document the report command prints.
type Report struct {
	Title    string               `json:"title" yaml:"title"`
	Dataset  model.DatasetInfo    `json:"dataset" yaml:"dataset"`
	Summary  model.SummaryReport  `json:"summary" yaml:"summary"`
	Series   []model.ChartPoint   `json:"series" yaml:"series"`
	Insights []model.InsightImage `json:"insights,omitempty" yaml:"insights,omitempty"`
}

// Write renders v in the requested format. Table output is only defined for
// Report; other values fall back to YAML.
func Write(w io.Writer, format string, v interface{}) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable, "":
		if r, ok := v.(Report); ok {
			_, err := io.WriteString(w, Table(r)+"\n")
			return err
		}
		return Write(w, FormatYAML, v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// Table renders the report as styled terminal text.
func Table(r Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(r.Title))
	b.WriteString("\n")
	if r.Dataset.Name != "" {
		b.WriteString(fmt.Sprintf("%s (%s)\n", r.Dataset.Name, r.Dataset.Origin))
	}

	b.WriteString(sectionStyle.Render("Sentiment Summary"))
	b.WriteString("\n")
	b.WriteString(metricRow("Total Records", fmt.Sprintf("%d", r.Summary.Total)))
	b.WriteString(metricRow("Positive Feedback", r.Summary.Positive.Display()))
	b.WriteString(metricRow("Negative Feedback", r.Summary.Negative.Display()))

	b.WriteString(sectionStyle.Render("Feedback Sentiment Distribution"))
	b.WriteString("\n")
	b.WriteString(seriesTable(r.Series, r.Summary.Total))

	if len(r.Insights) > 0 {
		b.WriteString(sectionStyle.Render("Insights"))
		b.WriteString("\n")
		for _, img := range r.Insights {
			if img.Available {
				b.WriteString(metricRow(img.Title, img.Caption))
			} else {
				b.WriteString(labelStyle.Render(img.Title) + warningStyle.Render(img.Warning) + "\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func metricRow(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

func seriesTable(series []model.ChartPoint, total int) string {
	if len(series) == 0 {
		return "(no records)\n"
	}

	rows := [][]string{{"Sentiment", "Count", "Share"}}
	for _, p := range series {
		rows = append(rows, []string{p.Label, fmt.Sprintf("%d", p.Count), model.PercentOf(p.Count, total).String()})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cellStyle.Width(widths[i] + 2).Render(cell)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return b.String()
}
