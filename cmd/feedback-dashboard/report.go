package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"feedback-dashboard/internal/chart"
	"feedback-dashboard/internal/insights"
	"feedback-dashboard/internal/model"
	"feedback-dashboard/internal/pipeline"
	"feedback-dashboard/internal/render"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reportFile   string
	reportOutput string
	reportChart  string
	reportExport string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the sentiment report for a dataset",
	Long: `Print the sentiment summary and distribution of the default dataset,
or of another CSV with the same schema.

Examples:
  # Report on the configured default dataset
  feedback-dashboard report

  # Report on another file as YAML and save the pie chart
  feedback-dashboard report --file march.csv --output yaml --chart sentiment.png`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "dataset to report on (default: configured dataset)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", render.FormatTable, "output format: table, json or yaml")
	reportCmd.Flags().StringVar(&reportChart, "chart", "", "write the distribution pie chart PNG to this path")
	reportCmd.Flags().StringVar(&reportExport, "export", "", "write the Sentiment,Count frame to this .csv or .json path")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	path := cfg.Dataset.Path
	if reportFile != "" {
		path = reportFile
	}

	table, err := pipeline.NewLoader(cfg.Dataset.LabelColumn).LoadDefault(path)
	if err != nil {
		return err
	}
	result := pipeline.Analyze(table)

	if reportChart != "" {
		if err := writeChart(reportChart, result.Series); err != nil {
			return err
		}
		logger.Info("chart written", zap.String("path", reportChart))
	}
	if reportExport != "" {
		if _, err := pipeline.ExportSeriesToFile(reportExport, result.Series); err != nil {
			return err
		}
		logger.Info("sentiment counts exported", zap.String("path", reportExport))
	}

	catalog := insights.NewCatalog(cfg.Insights.Dir, "", insights.DefaultDefinitions, logger)
	doc := render.Report{
		Title: model.DashboardTitle,
		Dataset: model.DatasetInfo{
			Origin:   model.OriginDefault,
			Name:     filepath.Base(path),
			Records:  table.Len(),
			LoadedAt: time.Now().UTC(),
		},
		Summary:  result.Report,
		Series:   result.Series,
		Insights: catalog.List(),
	}
	return render.Write(cmd.OutOrStdout(), reportOutput, doc)
}

func writeChart(path string, series []model.ChartPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()
	return chart.WritePNG(f, series, chart.DefaultOptions())
}
