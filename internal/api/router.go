package api

import (
	"net/http"

	_ "feedback-dashboard/docs"
	"feedback-dashboard/internal/api/handler"
	"feedback-dashboard/pkg/router"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RegisterRoutes mounts the dashboard API, metrics and API docs on r.
func RegisterRoutes(r *router.Router, h *handler.Handler, gatherer prometheus.Gatherer) {
	r.GET("/health", h.Health)
	r.Handle(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Handle(http.MethodGet, "/swagger/*", httpSwagger.WrapHandler)

	r.GET("/api/v1/dashboard", h.GetDashboard)
	r.GET("/api/v1/report", h.GetReport)
	r.GET("/api/v1/report/export", h.ExportReport)
	r.GET("/api/v1/chart", h.GetChart)
	r.GET("/api/v1/chart.png", h.GetChartImage)

	r.POST("/api/v1/datasets", h.UploadDataset)
	r.GET("/api/v1/datasets", h.ListDatasets)
	r.GET("/api/v1/datasets/current", h.GetCurrentDataset)
	r.GET("/api/v1/datasets/*", h.GetDataset)
	r.DELETE("/api/v1/datasets/current", h.ResetDataset)

	r.POST("/api/v1/analyze", h.Analyze)
	r.GET("/api/v1/analyze/sample", h.GetSampleText)
	r.GET("/api/v1/analyses", h.ListAnalyses)

	r.GET("/api/v1/insights", h.ListInsights)
	r.GET("/api/v1/insights/*", h.GetInsightImage)
}
