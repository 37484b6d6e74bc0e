package chart

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"feedback-dashboard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var series = []model.ChartPoint{
	{Label: "Positive", Count: 3},
	{Label: "Negative", Count: 1},
	{Label: "Neutral", Count: 1},
}

func TestLayout(t *testing.T) {
	slices := Layout(series)
	require.Len(t, slices, 3)

	assert.Equal(t, 0.0, slices[0].Start)
	assert.InDelta(t, 0.6*2*math.Pi, slices[0].End, 1e-9)
	assert.InDelta(t, slices[0].End, slices[1].Start, 1e-12)
	assert.InDelta(t, 2*math.Pi, slices[2].End, 1e-9)
	assert.Equal(t, Pastel[0], slices[0].Color)
	assert.Equal(t, Pastel[1], slices[1].Color)
}

func TestLayoutEmpty(t *testing.T) {
	assert.Empty(t, Layout(nil))

	slices := Layout([]model.ChartPoint{{Label: "Positive", Count: 0}})
	require.Len(t, slices, 1)
	assert.Equal(t, slices[0].Start, slices[0].End)
}

func TestRender(t *testing.T) {
	opts := DefaultOptions()
	img := Render(series, opts)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())

	// Just right of twelve o'clock sits inside the first wedge.
	cx := int(float32(opts.Width) * 0.35)
	cy := 40 + (opts.Height-50)/2
	assert.Equal(t, Pastel[0], img.RGBAAt(cx+5, cy-60))
}

func TestRenderDonutHole(t *testing.T) {
	opts := DefaultOptions()
	opts.Hole = 0.5
	img := Render(series, opts)

	cx := int(float32(opts.Width) * 0.35)
	cy := 40 + (opts.Height-50)/2
	assert.Equal(t, background, img.RGBAAt(cx+2, cy-2))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, series, Options{Width: 320, Height: 240}))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 320, decoded.Bounds().Dx())
}

func TestWritePNGEmptySeries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, nil, DefaultOptions()))
	assert.NotZero(t, buf.Len())
}
