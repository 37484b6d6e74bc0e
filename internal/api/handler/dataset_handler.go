package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"feedback-dashboard/internal/dashboard"
	"feedback-dashboard/internal/model"
	"feedback-dashboard/pkg/utils"

	"go.uber.org/zap"
)

// UploadDataset replaces the dashboard dataset with an uploaded CSV
// @Summary Upload dataset
// @Description Upload a CSV with a Sentiment_Label column, as multipart field "file" or a raw text/csv body. On failure the current dataset is kept.
// @Tags datasets
// @Accept multipart/form-data
// @Accept text/csv
// @Produce json
// @Param file formData file false "CSV file"
// @Param name query string false "File name for raw uploads"
// @Success 200 {object} dashboard.UploadResult "Upload accepted"
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 413 {object} ErrorResponse "Upload too large"
// @Failure 422 {object} ErrorResponse "Malformed table"
// @Router /datasets [post]
func (h *Handler) UploadDataset(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	name, data, err := h.readUpload(r)
	if err != nil {
		if isTooLarge(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if filepath.Ext(name) != "" && utils.FileType(name) != "csv" {
		writeError(w, http.StatusBadRequest, "only .csv files are accepted")
		return
	}

	res, err := h.svc.Upload(r.Context(), name, data)
	if err != nil {
		if dashboard.IsClientError(err) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Error("upload failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to process upload")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) readUpload(r *http.Request) (string, []byte, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
			return "", nil, err
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", nil, errors.New(`multipart field "file" is required`)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", nil, err
		}
		return header.Filename, data, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", nil, err
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "upload.csv"
	}
	return name, data, nil
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

// ListDatasets returns the dataset load history
// @Summary List dataset loads
// @Description Default load, accepted and rejected uploads, newest first
// @Tags datasets
// @Produce json
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {array} model.DatasetLoad "Dataset loads"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /datasets [get]
func (h *Handler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	loads, err := h.svc.DatasetHistory(r.Context(), queryLimit(r, 50))
	if err != nil {
		h.logger.Error("failed to list dataset loads", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch dataset history")
		return
	}
	writeJSON(w, http.StatusOK, loads)
}

// GetDataset returns one entry of the dataset history
// @Summary Get dataset load
// @Tags datasets
// @Produce json
// @Param id path string true "Dataset load ID"
// @Success 200 {object} model.DatasetLoad "Dataset load"
// @Failure 404 {object} ErrorResponse "Dataset load not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /datasets/{id} [get]
func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/datasets/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "dataset load not found")
		return
	}

	load, err := h.svc.DatasetLoad(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeError(w, http.StatusNotFound, "dataset load not found")
			return
		}
		h.logger.Error("failed to fetch dataset load", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch dataset load")
		return
	}
	writeJSON(w, http.StatusOK, load)
}

// GetCurrentDataset describes the dataset being shown
// @Summary Get current dataset
// @Tags datasets
// @Produce json
// @Success 200 {object} model.DatasetInfo "Current dataset"
// @Router /datasets/current [get]
func (h *Handler) GetCurrentDataset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot().Dataset)
}

// ResetDataset switches back to the default dataset
// @Summary Reset dataset
// @Description Discard the uploaded dataset and show the default one again
// @Tags datasets
// @Produce json
// @Success 200 {object} dashboard.UploadResult "Default dataset restored"
// @Router /datasets/current [delete]
func (h *Handler) ResetDataset(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.ResetDataset()
	writeJSON(w, http.StatusOK, dashboard.UploadResult{
		Message: "Showing the default dataset.",
		Dataset: snap.Dataset,
		Report:  snap.Result.Report,
	})
}
