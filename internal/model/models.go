package model

// Sentiment labels the dashboard reports on. The label set is open-ended;
// these are only the ones with dedicated metrics.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// MissingLabel is the tally category for rows with an empty or absent label cell.
const MissingLabel = "(missing)"

// DefaultLabelColumn is the column carrying the sentiment label.
const DefaultLabelColumn = "Sentiment_Label"

// DashboardTitle is the heading of the dashboard and of CLI reports.
const DashboardTitle = "Intelligent Customer Feedback Analysis System"

// FeedbackRecord represents one row of the feedback dataset
type FeedbackRecord struct {
	SentimentLabel string            `json:"sentiment_label"`
	Fields         map[string]string `json:"fields,omitempty"`
	Line           int               `json:"line"`
}

// FeedbackTable is an ordered set of feedback records with the header they were read with.
type FeedbackTable struct {
	Header  []string         `json:"header"`
	Records []FeedbackRecord `json:"records"`
}

// Len returns the number of records in the table
func (t FeedbackTable) Len() int {
	return len(t.Records)
}

// Labels returns the label of every record, in table order.
func (t FeedbackTable) Labels() []string {
	labels := make([]string, len(t.Records))
	for i, rec := range t.Records {
		labels[i] = rec.SentimentLabel
	}
	return labels
}

// NewTableFromLabels builds a table holding only sentiment labels.
func NewTableFromLabels(labels ...string) FeedbackTable {
	table := FeedbackTable{
		Header:  []string{DefaultLabelColumn},
		Records: make([]FeedbackRecord, 0, len(labels)),
	}
	for i, label := range labels {
		if label == "" {
			label = MissingLabel
		}
		table.Records = append(table.Records, FeedbackRecord{
			SentimentLabel: label,
			Fields:         map[string]string{DefaultLabelColumn: label},
			Line:           i + 2,
		})
	}
	return table
}
