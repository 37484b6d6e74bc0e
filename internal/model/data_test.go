package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentageRounding(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		total   int
		display string
		json    string
	}{
		{name: "half rounds like the display", count: 1, total: 16, display: "1 (6.2%)", json: "6.2"},
		{name: "below half", count: 1, total: 3, display: "1 (33.3%)", json: "33.3"},
		{name: "above half", count: 2, total: 3, display: "2 (66.7%)", json: "66.7"},
		{name: "whole", count: 3, total: 5, display: "3 (60.0%)", json: "60"},
		{name: "zero total", count: 0, total: 0, display: "0 (n/a)", json: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stat := CategoryStat{Count: tt.count, Percentage: PercentOf(tt.count, tt.total)}
			assert.Equal(t, tt.display, stat.Display())

			data, err := json.Marshal(stat.Percentage)
			require.NoError(t, err)
			assert.Equal(t, tt.json, string(data))
		})
	}
}

func TestPercentageUnmarshal(t *testing.T) {
	var stat CategoryStat
	require.NoError(t, json.Unmarshal([]byte(`{"count":2,"percentage":null}`), &stat))
	assert.False(t, stat.Percentage.Applicable())

	require.NoError(t, json.Unmarshal([]byte(`{"count":2,"percentage":40}`), &stat))
	v, ok := stat.Percentage.Value()
	assert.True(t, ok)
	assert.Equal(t, 40.0, v)
}
