package pipeline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"feedback-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSeries = []model.ChartPoint{{Label: "Positive", Count: 3}, {Label: "Negative", Count: 1}}

func TestExportSeries(t *testing.T) {
	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		result, err := ExportSeries(&buf, testSeries, FormatCSV)
		require.NoError(t, err)
		assert.Equal(t, 2, result.RecordCount)
		assert.Equal(t, "Sentiment,Count\nPositive,3\nNegative,1\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		_, err := ExportSeries(&buf, testSeries, FormatJSON)
		require.NoError(t, err)

		var rows []map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "Positive", rows[0]["Sentiment"])
		assert.Equal(t, float64(3), rows[0]["Count"])
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := ExportSeries(&bytes.Buffer{}, testSeries, "xml")
		assert.Error(t, err)
	})
}

func TestExportSeriesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "sentiment_counts.json")

	result, err := ExportSeriesToFile(path, testSeries)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, result.Format)
	assert.Equal(t, path, result.Path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Sentiment": "Negative"`)
}
