package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"feedback-dashboard/internal/chart"
	"feedback-dashboard/internal/dashboard"
	"feedback-dashboard/internal/pipeline"

	"go.uber.org/zap"
)

// GetDashboard returns the complete dashboard view
// @Summary Get dashboard
// @Description Headline metrics, sentiment distribution, current dataset and insight images
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.View "Dashboard view"
// @Router /dashboard [get]
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Dashboard())
}

// GetReport returns the summary report of the current dataset
// @Summary Get summary report
// @Description Total records and positive/negative counts with percentages. Percentages are null when there are no records.
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.SummaryReport "Summary report"
// @Router /report [get]
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Report())
}

// ExportReport downloads the sentiment counts
// @Summary Export sentiment counts
// @Description Sentiment,Count frame of the current dataset as CSV or JSON
// @Tags dashboard
// @Produce text/csv
// @Produce json
// @Param format query string false "csv or json" default(csv)
// @Success 200 {string} string "Sentiment counts"
// @Failure 400 {object} ErrorResponse "Unsupported format"
// @Router /report/export [get]
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatCSV
	}

	var buf bytes.Buffer
	if _, err := pipeline.ExportSeries(&buf, h.svc.Series(), format); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	contentType := "text/csv"
	if format == pipeline.FormatJSON {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="sentiment_counts.%s"`, format))
	w.Write(buf.Bytes())
}

// GetChart returns the sentiment distribution series
// @Summary Get chart series
// @Description Every sentiment category with its count, largest first
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.Chart "Chart series"
// @Router /chart [get]
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dashboard.Chart{Title: chart.DefaultTitle, Series: h.svc.Series()})
}

// GetChartImage renders the sentiment distribution as a PNG pie chart
// @Summary Get chart image
// @Description Pie chart of the sentiment distribution; set hole for a donut
// @Tags dashboard
// @Produce png
// @Param width query int false "Image width" default(640)
// @Param height query int false "Image height" default(400)
// @Param hole query number false "Donut hole fraction between 0 and 0.9" default(0)
// @Success 200 {file} file "PNG image"
// @Failure 400 {object} ErrorResponse "Invalid parameter"
// @Router /chart.png [get]
func (h *Handler) GetChartImage(w http.ResponseWriter, r *http.Request) {
	opts := chart.DefaultOptions()
	q := r.URL.Query()

	var err error
	if v := q.Get("width"); v != "" {
		if opts.Width, err = strconv.Atoi(v); err != nil || opts.Width > 4096 {
			writeError(w, http.StatusBadRequest, "invalid width")
			return
		}
	}
	if v := q.Get("height"); v != "" {
		if opts.Height, err = strconv.Atoi(v); err != nil || opts.Height > 4096 {
			writeError(w, http.StatusBadRequest, "invalid height")
			return
		}
	}
	if v := q.Get("hole"); v != "" {
		if opts.Hole, err = strconv.ParseFloat(v, 64); err != nil {
			writeError(w, http.StatusBadRequest, "invalid hole")
			return
		}
	}

	var buf bytes.Buffer
	if err := chart.WritePNG(&buf, h.svc.Series(), opts); err != nil {
		h.logger.Error("failed to render chart", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to render chart")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}
