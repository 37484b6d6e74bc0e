package handler

import (
	"encoding/json"
	"net/http"

	"feedback-dashboard/internal/classifier"
	"feedback-dashboard/internal/dashboard"

	"go.uber.org/zap"
)

// AnalyzeRequest is the body of POST /analyze
type AnalyzeRequest struct {
	Text string `json:"text" example:"The new features are great, but the app still crashes every time I try to save. Needs fixing ASAP."`
}

// Analyze labels one piece of feedback text
// @Summary Analyze feedback text
// @Description Assigns a sentiment label and a one-line summary. The label is a random placeholder, not a model prediction.
// @Tags analyzer
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Feedback text"
// @Success 200 {object} model.Analysis "Analysis"
// @Failure 400 {object} ErrorResponse "Invalid request payload"
// @Router /analyze [post]
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	analysis, err := h.svc.Analyze(r.Context(), req.Text)
	if err != nil {
		if dashboard.IsClientError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("analysis failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to analyze text")
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// GetSampleText returns the text offered before users type their own
// @Summary Get sample text
// @Tags analyzer
// @Produce json
// @Success 200 {object} AnalyzeRequest "Sample text"
// @Router /analyze/sample [get]
func (h *Handler) GetSampleText(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, AnalyzeRequest{Text: classifier.SampleText})
}

// ListAnalyses returns stored analyzer results
// @Summary List analyses
// @Tags analyzer
// @Produce json
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {array} model.Analysis "Analyses"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /analyses [get]
func (h *Handler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Analyses(r.Context(), queryLimit(r, 50))
	if err != nil {
		h.logger.Error("failed to list analyses", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch analyses")
		return
	}
	writeJSON(w, http.StatusOK, list)
}
