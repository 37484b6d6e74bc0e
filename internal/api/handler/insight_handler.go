package handler

import (
	"errors"
	"net/http"
	"strings"

	"feedback-dashboard/internal/insights"

	"go.uber.org/zap"
)

// ListInsights returns the external chart images and whether they exist
// @Summary List insight images
// @Tags insights
// @Produce json
// @Success 200 {array} model.InsightImage "Insight images"
// @Router /insights [get]
func (h *Handler) ListInsights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Insights())
}

// GetInsightImage serves one external chart image
// @Summary Get insight image
// @Tags insights
// @Produce png
// @Param name path string true "Image file name"
// @Success 200 {file} file "PNG image"
// @Failure 404 {object} ErrorResponse "Unknown or not generated"
// @Router /insights/{name} [get]
func (h *Handler) GetInsightImage(w http.ResponseWriter, r *http.Request) {
	prefix := "/api/v1/insights/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		writeError(w, http.StatusBadRequest, "Invalid path")
		return
	}
	name := r.URL.Path[len(prefix):]

	data, err := h.svc.InsightImage(name)
	if err != nil {
		if errors.Is(err, insights.ErrUnknownImage) || errors.Is(err, insights.ErrImageUnavailable) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("failed to read insight image", zap.String("name", name), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to read image")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}
