// Package chart renders the sentiment distribution as a PNG pie chart.
package chart

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"feedback-dashboard/internal/model"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// DefaultTitle is the heading drawn above the pie.
const DefaultTitle = "Feedback Sentiment Distribution"

// Pastel is the qualitative palette slices are coloured with, in order.
var Pastel = []color.RGBA{
	{102, 197, 204, 255},
	{246, 207, 113, 255},
	{248, 156, 116, 255},
	{220, 176, 242, 255},
	{135, 197, 95, 255},
	{158, 185, 243, 255},
	{254, 136, 177, 255},
	{201, 219, 116, 255},
	{139, 224, 164, 255},
	{180, 151, 231, 255},
	{179, 179, 179, 255},
}

var (
	background = color.RGBA{255, 255, 255, 255}
	ink        = color.RGBA{42, 63, 95, 255}
)

// Options controls the rendered image.
type Options struct {
	Width  int
	Height int
	Title  string
	// Hole is the inner radius as a fraction of the outer one; 0 draws a full pie.
	Hole float64
}

// DefaultOptions returns a 640x400 full pie with the standard title.
func DefaultOptions() Options {
	return Options{Width: 640, Height: 400, Title: DefaultTitle}
}

func (o Options) normalize() Options {
	if o.Width < 200 {
		o.Width = 200
	}
	if o.Height < 150 {
		o.Height = 150
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Hole < 0 || math.IsNaN(o.Hole) {
		o.Hole = 0
	}
	if o.Hole > 0.9 {
		o.Hole = 0.9
	}
	return o
}

// Slice is one wedge of the pie with its angular extent in radians, clockwise from twelve o'clock.
type Slice struct {
	Point model.ChartPoint
	Start float64
	End   float64
	Color color.RGBA
}

// Layout assigns each series point its wedge. Points with zero count get an empty wedge.
func Layout(series []model.ChartPoint) []Slice {
	total := 0
	for _, p := range series {
		total += p.Count
	}

	slices := make([]Slice, 0, len(series))
	angle := 0.0
	for i, p := range series {
		sweep := 0.0
		if total > 0 {
			sweep = float64(p.Count) / float64(total) * 2 * math.Pi
		}
		slices = append(slices, Slice{
			Point: p,
			Start: angle,
			End:   angle + sweep,
			Color: Pastel[i%len(Pastel)],
		})
		angle += sweep
	}
	return slices
}

// Render draws the series into a new RGBA image.
func Render(series []model.ChartPoint, opts Options) *image.RGBA {
	opts = opts.normalize()
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	drawText(img, opts.Title, (opts.Width-textWidth(opts.Title))/2, 24)

	plotTop := 40
	plotHeight := opts.Height - plotTop - 10
	cx := float32(opts.Width) * 0.35
	cy := float32(plotTop + plotHeight/2)
	radius := float32(math.Min(float64(opts.Width)*0.3, float64(plotHeight)/2)) - 4

	slices := Layout(series)
	total := 0
	for _, s := range slices {
		total += s.Point.Count
	}
	if total == 0 {
		msg := "No feedback records"
		drawText(img, msg, int(cx)-textWidth(msg)/2, int(cy))
		return img
	}

	for _, s := range slices {
		if s.End > s.Start {
			fillWedge(img, cx, cy, radius, s.Start, s.End, s.Color)
		}
	}
	if opts.Hole > 0 {
		fillWedge(img, cx, cy, radius*float32(opts.Hole), 0, 2*math.Pi, background)
	}

	legendX := int(float32(opts.Width) * 0.68)
	legendY := plotTop + 30
	for i, s := range slices {
		y := legendY + i*22
		swatch := image.Rect(legendX, y-10, legendX+12, y+2)
		draw.Draw(img, swatch, image.NewUniform(s.Color), image.Point{}, draw.Src)
		label := fmt.Sprintf("%s %d (%.1f%%)", s.Point.Label, s.Point.Count, float64(s.Point.Count)/float64(total)*100)
		drawText(img, label, legendX+18, y)
	}
	return img
}

// WritePNG renders the series and encodes it as PNG.
func WritePNG(w io.Writer, series []model.ChartPoint, opts Options) error {
	if err := png.Encode(w, Render(series, opts)); err != nil {
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	return nil
}

func fillWedge(dst draw.Image, cx, cy, r float32, start, end float64, c color.RGBA) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	const step = math.Pi / 90
	z.MoveTo(cx, cy)
	for a := start; a < end; a += step {
		z.LineTo(polar(cx, cy, r, a))
	}
	z.LineTo(polar(cx, cy, r, end))
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func polar(cx, cy, r float32, angle float64) (float32, float32) {
	return cx + r*float32(math.Sin(angle)), cy - r*float32(math.Cos(angle))
}

func drawText(dst draw.Image, s string, x, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ink),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}
