package classifier

import (
	"context"
	"math/rand/v2"
	"testing"

	"feedback-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomClassifier(t *testing.T) {
	ctx := context.Background()

	t.Run("labels come from the fixed set", func(t *testing.T) {
		c := NewRandom(42)
		allowed := map[string]bool{"Positive": true, "Negative": true, "Neutral": true}

		for i := 0; i < 100; i++ {
			res, err := c.Classify(ctx, "The delivery was late.")
			require.NoError(t, err)
			assert.True(t, allowed[res.Label], "unexpected label %q", res.Label)
			assert.Equal(t, Summarize(res.Label), res.Summary)
		}
	})

	t.Run("same seed gives same sequence", func(t *testing.T) {
		a, b := NewRandom(7), NewRandom(7)
		for i := 0; i < 20; i++ {
			ra, _ := a.Classify(ctx, "x")
			rb, _ := b.Classify(ctx, "x")
			assert.Equal(t, ra, rb)
		}
	})

	t.Run("weights are roughly honoured", func(t *testing.T) {
		c := NewRandom(1234)
		counts := map[string]int{}
		const n = 20000
		for i := 0; i < n; i++ {
			res, _ := c.Classify(ctx, "x")
			counts[res.Label]++
		}
		assert.InDelta(t, 0.5, float64(counts["Positive"])/n, 0.03)
		assert.InDelta(t, 0.3, float64(counts["Negative"])/n, 0.03)
		assert.InDelta(t, 0.2, float64(counts["Neutral"])/n, 0.03)
	})

	t.Run("single weight always wins", func(t *testing.T) {
		c := NewRandomWithSource(rand.NewPCG(1, 2), []Weighted{{Label: "Neutral", Weight: 1}})
		res, err := c.Classify(ctx, "anything")
		require.NoError(t, err)
		assert.Equal(t, "Neutral", res.Label)
		assert.Equal(t, "Summary: Customer feels neutral about the service.", res.Summary)
	})

	t.Run("blank text", func(t *testing.T) {
		_, err := NewRandom(1).Classify(ctx, "   ")
		assert.ErrorIs(t, err, model.ErrEmptyText)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := NewRandom(1).Classify(cctx, "x")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSampleText(t *testing.T) {
	assert.Equal(t, "The new features are great, but the app still crashes every time I try to save. Needs fixing ASAP.", SampleText)

	res, err := NewRandom(3).Classify(context.Background(), SampleText)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Label)
}
