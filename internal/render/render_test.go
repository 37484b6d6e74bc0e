package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"feedback-dashboard/internal/model"
	"feedback-dashboard/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() Report {
	result := pipeline.Analyze(model.NewTableFromLabels("Positive", "Positive", "Negative", "Neutral", "Positive"))
	return Report{
		Title:   model.DashboardTitle,
		Dataset: model.DatasetInfo{Name: "cleaned_customer_feedback.csv", Origin: model.OriginDefault, Records: 5},
		Summary: result.Report,
		Series:  result.Series,
		Insights: []model.InsightImage{
			{Name: "css_prediction_chart.png", Title: "CSS Prediction Trend", Warning: "css_prediction_chart.png not found."},
		},
	}
}

func TestTable(t *testing.T) {
	out := Table(sampleReport())

	assert.Contains(t, out, model.DashboardTitle)
	assert.Contains(t, out, "Total Records")
	assert.Contains(t, out, "3 (60.0%)")
	assert.Contains(t, out, "1 (20.0%)")
	assert.Contains(t, out, "Neutral")
	assert.Contains(t, out, "css_prediction_chart.png not found.")
}

func TestTableEmpty(t *testing.T) {
	r := Report{Title: model.DashboardTitle, Summary: pipeline.Report(model.SentimentTally{})}
	out := Table(r)
	assert.Contains(t, out, "0 (n/a)")
	assert.Contains(t, out, "(no records)")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleReport()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	summary := decoded["summary"].(map[string]interface{})
	assert.Equal(t, float64(5), summary["total"])
	assert.Equal(t, 60.0, summary["positive"].(map[string]interface{})["percentage"])
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sampleReport()))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	summary := decoded["summary"].(map[string]interface{})
	assert.Equal(t, 5, summary["total"])
	assert.Contains(t, buf.String(), "percentage: 20")
}

func TestWriteYAMLNotApplicable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, Report{Summary: pipeline.Report(model.SentimentTally{})}))
	assert.Contains(t, buf.String(), "percentage: null")
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, "xml", sampleReport()))
}
