// Package main implements the feedback-dashboard server and CLI.
//
// @title Customer Feedback Dashboard API
// @version 1.0
// @description Sentiment summary, distribution chart, dataset uploads and a placeholder text analyzer for customer feedback.
// @host localhost:8080
// @BasePath /api/v1
package main

import (
	"fmt"
	"os"

	"feedback-dashboard/internal/config"
	"feedback-dashboard/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// configPath is the YAML config file; missing files fall back to defaults
	configPath string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "feedback-dashboard",
	Short: "Customer feedback sentiment dashboard",
	Long: `feedback-dashboard serves sentiment statistics for a customer feedback dataset,
accepts replacement CSV uploads and offers a placeholder single-text analyzer.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(classifyCmd)
}

// loadConfig reads config and builds the logger every command uses.
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, logger, nil
}
