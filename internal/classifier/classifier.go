// Package classifier provides the ad-hoc single-text sentiment analyzer.
// The shipped implementation is a random placeholder, not a model.
package classifier

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"feedback-dashboard/internal/model"
)

// SampleText is the text offered to users before they type their own.
const SampleText = "The new features are great, but the app still crashes every time I try to save. Needs fixing ASAP."

// Classification is the outcome of classifying one piece of feedback text.
type Classification struct {
	Label   string `json:"label" yaml:"label"`
	Summary string `json:"summary" yaml:"summary"`
}

// Classifier labels a single feedback text.
type Classifier interface {
	Classify(ctx context.Context, text string) (Classification, error)
}

// Weighted is one label and its selection weight
type Weighted struct {
	Label  string
	Weight float64
}

// DefaultWeights are the placeholder label probabilities.
var DefaultWeights = []Weighted{
	{Label: model.SentimentPositive, Weight: 0.5},
	{Label: model.SentimentNegative, Weight: 0.3},
	{Label: model.SentimentNeutral, Weight: 0.2},
}

// RandomClassifier picks a label at random with fixed weights.
type RandomClassifier struct {
	mu      sync.Mutex
	rng     *rand.Rand
	weights []Weighted
	total   float64
}

// NewRandom returns a RandomClassifier. A zero seed draws a random one.
func NewRandom(seed uint64) *RandomClassifier {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return NewRandomWithSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15), DefaultWeights)
}

// NewRandomWithSource returns a RandomClassifier drawing from src with the given weights.
func NewRandomWithSource(src rand.Source, weights []Weighted) *RandomClassifier {
	total := 0.0
	for _, w := range weights {
		total += w.Weight
	}
	return &RandomClassifier{rng: rand.New(src), weights: weights, total: total}
}

// Classify ignores the content of text beyond rejecting blank input.
func (c *RandomClassifier) Classify(ctx context.Context, text string) (Classification, error) {
	if err := ctx.Err(); err != nil {
		return Classification{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Classification{}, model.ErrEmptyText
	}

	label := c.pick()
	return Classification{Label: label, Summary: Summarize(label)}, nil
}

func (c *RandomClassifier) pick() string {
	c.mu.Lock()
	r := c.rng.Float64() * c.total
	c.mu.Unlock()

	for _, w := range c.weights {
		if r < w.Weight {
			return w.Label
		}
		r -= w.Weight
	}
	return c.weights[len(c.weights)-1].Label
}

// Summarize returns the canned summary for a label.
func Summarize(label string) string {
	return fmt.Sprintf("Summary: Customer feels %s about the service.", strings.ToLower(label))
}
