package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"feedback-dashboard/internal/api"
	"feedback-dashboard/internal/api/handler"
	"feedback-dashboard/internal/classifier"
	"feedback-dashboard/internal/config"
	"feedback-dashboard/internal/dashboard"
	"feedback-dashboard/internal/insights"
	"feedback-dashboard/internal/metrics"
	"feedback-dashboard/internal/model"
	"feedback-dashboard/internal/pipeline"
	"feedback-dashboard/internal/store"
	"feedback-dashboard/pkg/router"
	"feedback-dashboard/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP server",
	Long: `Load the default dataset and serve the dashboard API.

The server refuses to start when the default dataset is missing.

Examples:
  # Serve with config.yaml in the working directory
  feedback-dashboard serve

  # Override the listen address
  FEEDBACK_SERVER_ADDRESS=:9090 feedback-dashboard serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return serve(ctx, cfg, logger)
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	// Nothing is created on disk until the default dataset has loaded.
	loader := pipeline.NewLoader(cfg.Dataset.LabelColumn)
	table, err := loader.LoadDefault(cfg.Dataset.Path)
	if err != nil {
		metrics.ObserveDatasetLoad(model.OriginDefault, model.LoadRejected)
		logger.Error("failed to load default dataset", zap.String("path", cfg.Dataset.Path), zap.Error(err))
		return err
	}

	st, err := store.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
	if err != nil {
		return err
	}
	defer st.Close()

	archive := utils.NewOutputManager(cfg.Upload.ArchiveDir)
	if err := archive.EnsureOutputDirExists(); err != nil {
		return err
	}

	catalog := insights.NewCatalog(cfg.Insights.Dir, "/api/v1/insights/", insights.DefaultDefinitions, logger.Named("insights"))
	if cfg.Insights.Watch {
		if err := insights.NewWatcher(catalog, logger.Named("insights")).Start(ctx); err != nil {
			logger.Warn("insight watcher disabled", zap.String("dir", cfg.Insights.Dir), zap.Error(err))
		}
	}

	svc := dashboard.New(ctx, cfg.Dataset.Path, table, dashboard.Options{
		Loader:     loader,
		History:    st,
		Classifier: classifier.NewRandom(cfg.Classifier.Seed),
		Catalog:    catalog,
		Archive:    archive,
		Logger:     logger.Named("dashboard"),
	})

	r := router.New(logger.Named("http"))
	r.OnRequest(metrics.ObserveRequest)
	api.RegisterRoutes(r, handler.New(svc, cfg.Upload.MaxBytes, logger.Named("api")), prometheus.DefaultGatherer)

	return r.Start(ctx, cfg.Server.Address, cfg.Server.ShutdownTimeout)
}
