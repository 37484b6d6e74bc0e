package pipeline

import (
	"sort"

	"feedback-dashboard/internal/model"
)

// Aggregate counts records per distinct sentiment label. Labels are compared
// exactly; "positive" and "Positive" are different categories. An empty table
// yields an empty tally.
func Aggregate(table model.FeedbackTable) model.SentimentTally {
	tally := make(model.SentimentTally)
	for _, rec := range table.Records {
		tally[rec.SentimentLabel]++
	}
	return tally
}

// SortedLabels returns the tally's labels by count descending, ties broken by label.
func SortedLabels(tally model.SentimentTally) []string {
	labels := make([]string, 0, len(tally))
	for label := range tally {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ci, cj := tally[labels[i]], tally[labels[j]]
		if ci != cj {
			return ci > cj
		}
		return labels[i] < labels[j]
	})
	return labels
}
