package pipeline

import (
	"feedback-dashboard/internal/model"
)

// validateHeader checks that the label column is present exactly once and returns its index.
// Matching is case-sensitive.
func validateHeader(header []string, labelColumn string) (int, error) {
	idx := -1
	for i, h := range header {
		if h != labelColumn {
			continue
		}
		if idx >= 0 {
			return -1, &model.MalformedTableError{Reason: "duplicate column: " + labelColumn, Line: 1}
		}
		idx = i
	}
	if idx < 0 {
		return -1, &model.MalformedTableError{Reason: "missing required field: " + labelColumn, Line: 1}
	}
	return idx, nil
}
