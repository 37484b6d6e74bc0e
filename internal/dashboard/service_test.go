package dashboard

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"feedback-dashboard/internal/classifier"
	"feedback-dashboard/internal/insights"
	"feedback-dashboard/internal/model"
	"feedback-dashboard/internal/pipeline"
	"feedback-dashboard/internal/store"
	"feedback-dashboard/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const defaultCSV = "Feedback_ID,Sentiment_Label\n1,Positive\n2,Positive\n3,Negative\n4,Neutral\n5,Positive\n"

type fixture struct {
	svc   *Service
	store *store.Store
	dir   string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cleaned_customer_feedback.csv")
	require.NoError(t, os.WriteFile(path, []byte(defaultCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "recurring_issues_chart.png"), []byte("png"), 0o644))

	st, err := store.Open(context.Background(), store.DriverSQLite, filepath.Join(dir, "feedback.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	loader := pipeline.NewLoader(model.DefaultLabelColumn)
	table, err := loader.LoadDefault(path)
	require.NoError(t, err)

	svc := New(context.Background(), path, table, Options{
		Loader:     loader,
		History:    st,
		Classifier: classifier.NewRandomWithSource(rand.NewPCG(1, 1), []classifier.Weighted{{Label: "Negative", Weight: 1}}),
		Catalog:    insights.NewCatalog(dir, "/api/v1/insights/", insights.DefaultDefinitions, zap.NewNop()),
		Archive:    utils.NewOutputManager(filepath.Join(dir, "uploads")),
		Logger:     zap.NewNop(),
	})
	return fixture{svc: svc, store: st, dir: dir}
}

func TestNew(t *testing.T) {
	f := newFixture(t)

	report := f.svc.Report()
	assert.Equal(t, 5, report.Total)
	assert.Equal(t, "3 (60.0%)", report.Positive.Display())
	assert.Equal(t, "1 (20.0%)", report.Negative.Display())

	loads, err := f.svc.DatasetHistory(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, loads, 1)
	assert.Equal(t, model.OriginDefault, loads[0].Origin)
	assert.Equal(t, 5, loads[0].Records)
}

func TestNewWithEmptyDefaultTable(t *testing.T) {
	svc := New(context.Background(), "empty.csv", model.FeedbackTable{}, Options{})

	snap := svc.Snapshot()
	assert.Equal(t, "empty.csv", snap.Dataset.Name)
	assert.Equal(t, 0, snap.Dataset.Records)
	assert.True(t, snap.Dataset.Default)
	assert.Equal(t, "0 (n/a)", svc.Report().Positive.Display())
}

func TestDashboardView(t *testing.T) {
	f := newFixture(t)

	view := f.svc.Dashboard()
	assert.Equal(t, model.DashboardTitle, view.Title)
	require.Len(t, view.Metrics, 3)
	assert.Equal(t, "Total Records", view.Metrics[0].Label)
	assert.Equal(t, "5", view.Metrics[0].Display)
	assert.Equal(t, "Feedback Sentiment Distribution", view.Chart.Title)
	assert.Equal(t, model.ChartPoint{Label: "Positive", Count: 3}, view.Chart.Series[0])
	require.Len(t, view.Insights, 2)
	assert.True(t, view.Insights[0].Available)
	assert.False(t, view.Insights[1].Available)
	assert.Equal(t, "cleaned_customer_feedback.csv", view.Dataset.Name)
	assert.True(t, view.Dataset.Default)
}

func TestUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("accepted upload replaces the table", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.svc.Upload(ctx, "new.csv", []byte("Sentiment_Label\nNegative\nNegative\nPositive\n"))
		require.NoError(t, err)
		assert.Equal(t, "Uploaded 3 records for analysis.", res.Message)
		assert.Equal(t, 2, res.Report.Negative.Count)
		assert.Equal(t, 3, f.svc.Report().Total)

		loads, err := f.svc.DatasetHistory(ctx, 10)
		require.NoError(t, err)
		require.Len(t, loads, 2)
		assert.Equal(t, model.LoadAccepted, loads[0].Status)
		assert.FileExists(t, loads[0].ArchivePath)
	})

	t.Run("malformed upload keeps the previous report", func(t *testing.T) {
		f := newFixture(t)
		before := f.svc.Report()

		_, err := f.svc.Upload(ctx, "bad.csv", []byte("Feedback_ID,Text\n1,hello\n"))
		require.Error(t, err)
		assert.True(t, model.IsMalformedTable(err))
		assert.True(t, IsClientError(err))
		assert.Equal(t, before, f.svc.Report())

		loads, err := f.svc.DatasetHistory(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, model.LoadRejected, loads[0].Status)
		assert.Contains(t, loads[0].Error, "Sentiment_Label")
		assert.Empty(t, loads[0].ArchivePath)
	})

	t.Run("reset restores the default dataset", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Upload(ctx, "new.csv", []byte("Sentiment_Label\nNeutral\n"))
		require.NoError(t, err)

		snap := f.svc.ResetDataset()
		assert.Equal(t, model.OriginDefault, snap.Dataset.Origin)
		assert.True(t, snap.Dataset.Default)
		assert.Equal(t, 5, f.svc.Report().Total)
	})

	t.Run("reset while showing the default dataset", func(t *testing.T) {
		f := newFixture(t)
		before := f.svc.Snapshot()

		snap := f.svc.ResetDataset()
		assert.Equal(t, before.Dataset, snap.Dataset)
	})

	t.Run("dataset load by id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Upload(ctx, "new.csv", []byte("Sentiment_Label\nNeutral\n"))
		require.NoError(t, err)

		current := f.svc.Snapshot().Dataset
		assert.False(t, current.Default)

		load, err := f.svc.DatasetLoad(ctx, current.ID)
		require.NoError(t, err)
		assert.Equal(t, "new.csv", load.Name)
		assert.Equal(t, 1, load.Records)

		_, err = f.svc.DatasetLoad(ctx, "missing")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestAnalyze(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.svc.Analyze(ctx, "The delivery was late and the product was damaged.")
	require.NoError(t, err)
	assert.Equal(t, "Negative", a.Label)
	assert.Equal(t, "Summary: Customer feels negative about the service.", a.Summary)

	list, err := f.svc.Analyses(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)

	_, err = f.svc.Analyze(ctx, "")
	assert.True(t, errors.Is(err, model.ErrEmptyText))
	assert.True(t, IsClientError(err))
}

func TestInsightImage(t *testing.T) {
	f := newFixture(t)

	data, err := f.svc.InsightImage("recurring_issues_chart.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)

	_, err = f.svc.InsightImage("css_prediction_chart.png")
	assert.ErrorIs(t, err, insights.ErrImageUnavailable)
}

func TestServiceWithoutOptionalDependencies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.csv")
	require.NoError(t, os.WriteFile(path, []byte("Sentiment_Label\n"), 0o644))

	table, err := pipeline.NewLoader("").LoadDefault(path)
	require.NoError(t, err)

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := New(context.Background(), path, table, Options{Now: func() time.Time { return fixed }})

	assert.Equal(t, fixed, svc.Snapshot().Dataset.LoadedAt)
	assert.False(t, svc.Report().Positive.Percentage.Applicable())
	assert.Empty(t, svc.Insights())
	assert.NoError(t, svc.Health(context.Background()))

	loads, err := svc.DatasetHistory(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, loads)

	_, err = svc.DatasetLoad(context.Background(), svc.Snapshot().Dataset.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
