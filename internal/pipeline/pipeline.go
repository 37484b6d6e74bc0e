package pipeline

import (
	"feedback-dashboard/internal/model"
)

// Analyze runs the table through aggregation and reporting.
func Analyze(table model.FeedbackTable) model.AnalysisResult {
	tally := Aggregate(table)
	return model.AnalysisResult{
		Tally:  tally,
		Report: Report(tally),
		Series: ChartSeries(tally),
	}
}
