// Package dashboard composes the feedback pipeline, the session and the
// supporting stores into the operations the API and CLI expose.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"feedback-dashboard/internal/chart"
	"feedback-dashboard/internal/classifier"
	"feedback-dashboard/internal/insights"
	"feedback-dashboard/internal/metrics"
	"feedback-dashboard/internal/model"
	"feedback-dashboard/internal/pipeline"
	"feedback-dashboard/internal/session"
	"feedback-dashboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// History persists dataset loads and analyzer results.
type History interface {
	SaveDatasetLoad(ctx context.Context, load *model.DatasetLoad) error
	ListDatasetLoads(ctx context.Context, limit int) ([]model.DatasetLoad, error)
	GetDatasetLoad(ctx context.Context, id string) (model.DatasetLoad, error)
	SaveAnalysis(ctx context.Context, a *model.Analysis) error
	ListAnalyses(ctx context.Context, limit int) ([]model.Analysis, error)
	Ping(ctx context.Context) error
}

// Options wires a Service. Only Loader is required; nil History, Catalog
// and Archive disable those features.
type Options struct {
	Loader     *pipeline.Loader
	History    History
	Classifier classifier.Classifier
	Catalog    *insights.Catalog
	Archive    *utils.OutputManager
	Logger     *zap.Logger
	Now        func() time.Time
}

// Service answers every dashboard request against the current session.
type Service struct {
	loader     *pipeline.Loader
	history    History
	classifier classifier.Classifier
	catalog    *insights.Catalog
	archive    *utils.OutputManager
	logger     *zap.Logger
	now        func() time.Time

	session *session.Session
}

// Metric is one headline number of the dashboard.
type Metric struct {
	Label   string `json:"label"`
	Value   int    `json:"value"`
	Display string `json:"display"`
}

// Chart is the sentiment distribution with its title.
type Chart struct {
	Title  string             `json:"title"`
	Series []model.ChartPoint `json:"series"`
}

// View is everything the dashboard page shows.
type View struct {
	Title    string               `json:"title"`
	Dataset  model.DatasetInfo    `json:"dataset"`
	Metrics  []Metric             `json:"metrics"`
	Report   model.SummaryReport  `json:"report"`
	Chart    Chart                `json:"chart"`
	Insights []model.InsightImage `json:"insights"`
}

// UploadResult acknowledges an accepted replacement dataset.
type UploadResult struct {
	Message string              `json:"message"`
	Dataset model.DatasetInfo   `json:"dataset"`
	Report  model.SummaryReport `json:"report"`
}

// New starts a session on the default table, previously loaded from path
// with Loader.LoadDefault. The table is what ResetDataset returns to.
func New(ctx context.Context, path string, table model.FeedbackTable, opts Options) *Service {
	s := &Service{
		loader:     opts.Loader,
		history:    opts.History,
		classifier: opts.Classifier,
		catalog:    opts.Catalog,
		archive:    opts.Archive,
		logger:     opts.Logger,
		now:        opts.Now,
	}
	if s.loader == nil {
		s.loader = pipeline.NewLoader(model.DefaultLabelColumn)
	}
	if s.classifier == nil {
		s.classifier = classifier.NewRandom(0)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}

	info := model.DatasetInfo{
		ID:       uuid.New().String(),
		Origin:   model.OriginDefault,
		Name:     filepath.Base(path),
		LoadedAt: s.now().UTC(),
	}
	s.session = session.New(table, info)
	snap := s.session.Current()

	s.recordLoad(ctx, &model.DatasetLoad{
		ID:        info.ID,
		Origin:    model.OriginDefault,
		Name:      info.Name,
		Status:    model.LoadAccepted,
		Records:   table.Len(),
		CreatedAt: info.LoadedAt,
	})
	s.publish(snap)

	s.logger.Info("default dataset loaded",
		zap.String("path", path),
		zap.Int("records", table.Len()),
		zap.Int("categories", len(snap.Result.Tally)),
	)
	return s
}

// Snapshot returns the current table and its analysis.
func (s *Service) Snapshot() session.Snapshot {
	return s.session.Current()
}

// Report returns the headline metrics of the current table.
func (s *Service) Report() model.SummaryReport {
	return s.session.Current().Result.Report
}

// Series returns the chart series of the current table.
func (s *Service) Series() []model.ChartPoint {
	return s.session.Current().Result.Series
}

// Dashboard assembles the full page view.
func (s *Service) Dashboard() View {
	snap := s.session.Current()
	report := snap.Result.Report

	return View{
		Title:   model.DashboardTitle,
		Dataset: snap.Dataset,
		Metrics: []Metric{
			{Label: "Total Records", Value: report.Total, Display: fmt.Sprintf("%d", report.Total)},
			{Label: "Positive Feedback", Value: report.Positive.Count, Display: report.Positive.Display()},
			{Label: "Negative Feedback", Value: report.Negative.Count, Display: report.Negative.Display()},
		},
		Report:   report,
		Chart:    Chart{Title: chart.DefaultTitle, Series: snap.Result.Series},
		Insights: s.Insights(),
	}
}

// Upload replaces the current table with a parsed CSV upload. On any error
// the current table stays in place.
func (s *Service) Upload(ctx context.Context, name string, data []byte) (UploadResult, error) {
	load := &model.DatasetLoad{
		ID:        uuid.New().String(),
		Origin:    model.OriginUpload,
		Name:      filepath.Base(name),
		SizeBytes: int64(len(data)),
		CreatedAt: s.now().UTC(),
	}

	table, err := s.loader.LoadReplacement(data)
	if err != nil {
		load.Status = model.LoadRejected
		load.Error = err.Error()
		s.recordLoad(ctx, load)
		metrics.ObserveDatasetLoad(model.OriginUpload, model.LoadRejected)
		s.logger.Warn("upload rejected", zap.String("name", load.Name), zap.Error(err))
		return UploadResult{}, err
	}

	if s.archive != nil {
		path, err := s.archive.Save(load.ID, load.Name, data)
		if err != nil {
			s.logger.Warn("failed to archive upload", zap.String("id", load.ID), zap.Error(err))
		} else {
			load.ArchivePath = path
		}
	}

	snap := s.session.Replace(table, model.DatasetInfo{
		ID:       load.ID,
		Origin:   model.OriginUpload,
		Name:     load.Name,
		LoadedAt: load.CreatedAt,
	})

	load.Status = model.LoadAccepted
	load.Records = table.Len()
	s.recordLoad(ctx, load)
	metrics.ObserveDatasetLoad(model.OriginUpload, model.LoadAccepted)
	s.publish(snap)

	s.logger.Info("upload accepted", zap.String("id", load.ID), zap.String("name", load.Name), zap.Int("records", table.Len()))
	return UploadResult{
		Message: fmt.Sprintf("Uploaded %d records for analysis.", table.Len()),
		Dataset: snap.Dataset,
		Report:  snap.Result.Report,
	}, nil
}

// ResetDataset goes back to the default dataset.
func (s *Service) ResetDataset() session.Snapshot {
	if s.session.IsDefault() {
		return s.session.Current()
	}
	snap := s.session.Reset()
	s.publish(snap)
	s.logger.Info("dataset reset to default", zap.String("id", snap.Dataset.ID))
	return snap
}

// Analyze runs the ad-hoc classifier over text and stores the result.
func (s *Service) Analyze(ctx context.Context, text string) (model.Analysis, error) {
	res, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return model.Analysis{}, err
	}

	analysis := model.Analysis{
		ID:        uuid.New().String(),
		Text:      text,
		Label:     res.Label,
		Summary:   res.Summary,
		CreatedAt: s.now().UTC(),
	}
	if s.history != nil {
		if err := s.history.SaveAnalysis(ctx, &analysis); err != nil {
			s.logger.Warn("failed to store analysis", zap.String("id", analysis.ID), zap.Error(err))
		}
	}
	metrics.ObserveAnalysis(res.Label)
	s.logger.Debug("text analyzed", zap.String("label", res.Label), zap.String("text", utils.Truncate(text, 64)))
	return analysis, nil
}

// DatasetHistory lists recent dataset loads.
func (s *Service) DatasetHistory(ctx context.Context, limit int) ([]model.DatasetLoad, error) {
	if s.history == nil {
		return []model.DatasetLoad{}, nil
	}
	return s.history.ListDatasetLoads(ctx, limit)
}

// DatasetLoad returns one entry of the dataset history. It returns
// model.ErrNotFound when the entry does not exist or history is disabled.
func (s *Service) DatasetLoad(ctx context.Context, id string) (model.DatasetLoad, error) {
	if s.history == nil {
		return model.DatasetLoad{}, model.ErrNotFound
	}
	return s.history.GetDatasetLoad(ctx, id)
}

// Analyses lists recent analyzer results.
func (s *Service) Analyses(ctx context.Context, limit int) ([]model.Analysis, error) {
	if s.history == nil {
		return []model.Analysis{}, nil
	}
	return s.history.ListAnalyses(ctx, limit)
}

// Insights lists the external chart images and whether they exist.
func (s *Service) Insights() []model.InsightImage {
	if s.catalog == nil {
		return []model.InsightImage{}
	}
	return s.catalog.List()
}

// InsightImage returns the bytes of one external chart image.
func (s *Service) InsightImage(name string) ([]byte, error) {
	if s.catalog == nil {
		return nil, insights.ErrUnknownImage
	}
	return s.catalog.Read(name)
}

// Health checks the dependencies the service needs at runtime.
func (s *Service) Health(ctx context.Context) error {
	if s.history == nil {
		return nil
	}
	if err := s.history.Ping(ctx); err != nil {
		return fmt.Errorf("store unavailable: %w", err)
	}
	return nil
}

// recordLoad stores a dataset load; history is best-effort and never fails the load itself.
func (s *Service) recordLoad(ctx context.Context, load *model.DatasetLoad) {
	if s.history == nil {
		return
	}
	if err := s.history.SaveDatasetLoad(ctx, load); err != nil {
		s.logger.Warn("failed to record dataset load", zap.String("id", load.ID), zap.Error(err))
	}
}

func (s *Service) publish(snap session.Snapshot) {
	metrics.SetDataset(snap.Dataset.Records, snap.Result.Tally)
}

// IsClientError reports whether err was caused by the caller's input.
func IsClientError(err error) bool {
	return model.IsMalformedTable(err) || errors.Is(err, model.ErrEmptyText)
}
