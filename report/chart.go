package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"

	"github.com/teatak/dieci/ngram"
	"github.com/teatak/dieci/redup"
)

// ErrNoData is returned when a chart would have nothing to draw.
var ErrNoData = errors.New("no data to chart")

// Colours of the n-gram bar charts.
var (
	SteelBlue      = drawing.ColorFromHex("4682b4")
	MediumSeaGreen = drawing.ColorFromHex("3cb371")
	Coral          = drawing.ColorFromHex("ff7f50")
)

// categoryColors fixes one pie colour per reduplication category.
var categoryColors = map[redup.Category]drawing.Color{
	redup.AA:   drawing.ColorFromHex("ff9999"),
	redup.AAB:  drawing.ColorFromHex("66b3ff"),
	redup.ABB:  drawing.ColorFromHex("99ff99"),
	redup.AABB: drawing.ColorFromHex("ffcc99"),
	redup.ABAB: drawing.ColorFromHex("c2c2f0"),
	redup.AABC: drawing.ColorFromHex("ffb3e6"),
	redup.ABCC: drawing.ColorFromHex("c2f0c2"),
	redup.LONG: drawing.ColorFromHex("d9d9d9"),
}

// Charter renders bar and pie charts as PNG images.
type Charter struct {
	Width  int
	Height int
	DPI    float64
	Font   *truetype.Font
}

// LoadFont parses a TrueType font file for chart labels.
func LoadFont(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	font, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return font, nil
}

// Bar draws one bar per row, in row order.
func (c *Charter) Bar(w io.Writer, title, ylabel string, color drawing.Color, rows []ngram.Row) error {
	if len(rows) == 0 {
		return ErrNoData
	}
	bars := make([]chart.Value, len(rows))
	highest := 0.0
	for i, r := range rows {
		highest = math.Max(highest, float64(r.Count))
		bars[i] = chart.Value{
			Label: r.Label,
			Value: float64(r.Count),
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}
	}
	graph := chart.BarChart{
		Title:      title,
		Width:      c.Width,
		Height:     c.Height,
		DPI:        c.DPI,
		Font:       c.Font,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 24}},
		XAxis:      chart.Style{TextRotationDegrees: 45},
		// Bars start at zero; equal counts would otherwise leave an empty range.
		YAxis: chart.YAxis{
			Name:  ylabel,
			Range: &chart.ContinuousRange{Min: 0, Max: highest},
		},
		BarWidth: c.Width / (len(rows)*2 + 1),
		Bars:     bars,
	}
	return graph.Render(chart.PNG, w)
}

// Pie draws the share of each category in idx, in presentation order.
func (c *Charter) Pie(w io.Writer, title string, idx *redup.Index) error {
	var (
		cats   []redup.Category
		counts []float64
	)
	for _, cat := range redup.Categories {
		if n := idx.Count(cat); n > 0 {
			cats = append(cats, cat)
			counts = append(counts, float64(n))
		}
	}
	if len(cats) == 0 {
		return ErrNoData
	}

	total := floats.Sum(counts)
	values := make([]chart.Value, len(cats))
	for i, cat := range cats {
		values[i] = chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", cat, 100*counts[i]/total),
			Value: counts[i],
			Style: chart.Style{FillColor: categoryColors[cat]},
		}
	}
	graph := chart.PieChart{
		Title:  title,
		Width:  c.Width,
		Height: c.Height,
		DPI:    c.DPI,
		Font:   c.Font,
		Values: values,
	}
	return graph.Render(chart.PNG, w)
}

// SaveBar renders a bar chart into path.
func (c *Charter) SaveBar(path, title, ylabel string, color drawing.Color, rows []ngram.Row) error {
	if len(rows) == 0 {
		return ErrNoData
	}
	return saveFile(path, func(w io.Writer) error { return c.Bar(w, title, ylabel, color, rows) })
}

// SavePie renders a pie chart into path.
func (c *Charter) SavePie(path, title string, idx *redup.Index) error {
	if idx.Total() == 0 {
		return ErrNoData
	}
	return saveFile(path, func(w io.Writer) error { return c.Pie(w, title, idx) })
}
