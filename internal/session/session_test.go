package session

import (
	"sync"
	"testing"
	"time"

	"feedback-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
)

func defaultSession() *Session {
	table := model.NewTableFromLabels("Positive", "Positive", "Negative", "Neutral", "Positive")
	return New(table, model.DatasetInfo{ID: "default", Origin: model.OriginDefault, Name: "cleaned_customer_feedback.csv", LoadedAt: time.Now()})
}

func TestSession(t *testing.T) {
	t.Run("starts on the default table", func(t *testing.T) {
		s := defaultSession()

		snap := s.Current()
		assert.Equal(t, 5, snap.Dataset.Records)
		assert.Equal(t, 5, snap.Result.Report.Total)
		assert.True(t, s.IsDefault())
		assert.True(t, snap.Dataset.Default)
	})

	t.Run("replace recomputes the report", func(t *testing.T) {
		s := defaultSession()

		snap := s.Replace(model.NewTableFromLabels("Negative", "Negative"), model.DatasetInfo{ID: "u1", Origin: model.OriginUpload})
		assert.Equal(t, 2, snap.Dataset.Records)
		assert.Equal(t, 2, s.Current().Result.Report.Negative.Count)
		assert.False(t, s.IsDefault())
		assert.False(t, snap.Dataset.Default)
	})

	t.Run("reset restores the default table", func(t *testing.T) {
		s := defaultSession()
		s.Replace(model.NewTableFromLabels("Negative"), model.DatasetInfo{ID: "u1"})

		snap := s.Reset()
		assert.Equal(t, "default", snap.Dataset.ID)
		assert.True(t, snap.Dataset.Default)
		assert.Equal(t, 3, snap.Result.Report.Positive.Count)
		assert.True(t, s.IsDefault())
	})

	t.Run("replace with an empty table", func(t *testing.T) {
		s := defaultSession()

		snap := s.Replace(model.FeedbackTable{}, model.DatasetInfo{ID: "empty"})
		assert.Equal(t, 0, snap.Result.Report.Total)
		assert.False(t, snap.Result.Report.Positive.Percentage.Applicable())
	})
}

func TestSessionConcurrentAccess(t *testing.T) {
	s := defaultSession()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Replace(model.NewTableFromLabels("Negative"), model.DatasetInfo{ID: "u"})
		}()
		go func() {
			defer wg.Done()
			snap := s.Current()
			assert.Equal(t, snap.Table.Len(), snap.Result.Tally.Total())
		}()
	}
	wg.Wait()
}
