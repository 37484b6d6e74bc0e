package pipeline

import (
	"feedback-dashboard/internal/model"
)

// Report builds the headline metrics from a tally. With no records both
// percentages are not applicable.
func Report(tally model.SentimentTally) model.SummaryReport {
	total := tally.Total()
	positive := tally[model.SentimentPositive]
	negative := tally[model.SentimentNegative]

	return model.SummaryReport{
		Total: total,
		Positive: model.CategoryStat{
			Count:      positive,
			Percentage: model.PercentOf(positive, total),
		},
		Negative: model.CategoryStat{
			Count:      negative,
			Percentage: model.PercentOf(negative, total),
		},
	}
}

// ChartSeries lists every category once, largest first.
func ChartSeries(tally model.SentimentTally) []model.ChartPoint {
	labels := SortedLabels(tally)
	series := make([]model.ChartPoint, 0, len(labels))
	for _, label := range labels {
		series = append(series, model.ChartPoint{Label: label, Count: tally[label]})
	}
	return series
}
