// Package lineplot turns a frame.Frame into a displayable figure: either
// all series on one set of axes, or one stacked subplot per series.
package lineplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"odeplot/frame"
)

// Mode selects how the value columns are arranged.
type Mode string

const (
	// ModeCombined draws every value column on one shared set of axes.
	ModeCombined Mode = "combined"
	// ModeSubplots draws one axes region per value column, stacked
	// vertically and sharing the index's x-range.
	ModeSubplots Mode = "subplots"
)

// Figure is a renderable chart. Draw renders into the given canvas;
// Plots exposes the underlying axes regions.
type Figure interface {
	Draw(dc draw.Canvas)
	Plots() []*plot.Plot
}

// Build constructs the figure for the given mode.
func Build(f *frame.Frame, mode Mode, title string) (Figure, error) {
	switch mode {
	case ModeCombined:
		return Combined(f, title)
	case ModeSubplots:
		return Subplots(f, title)
	default:
		return nil, fmt.Errorf("unknown render mode: %q", mode)
	}
}

type pairs struct {
	xs, ys []float64
}

func (p pairs) Len() int {
	return len(p.xs)
}

func (p pairs) XY(i int) (x, y float64) {
	return p.xs[i], p.ys[i]
}

func newLine(f *frame.Frame, name string, ordinal int) (*plotter.Line, error) {
	line, err := plotter.NewLine(pairs{xs: f.Index(), ys: f.Column(name)})
	if err != nil {
		return nil, fmt.Errorf("column %q: %v", name, err)
	}
	line.Color = plotutil.Color(ordinal)
	return line, nil
}

// CombinedFigure draws every value column as one line on a single plot.
type CombinedFigure struct {
	Plot  *plot.Plot
	Lines []*plotter.Line
}

// Combined builds a single-axes figure with one line and one legend
// entry per value column. An empty title leaves the plot untitled.
func Combined(f *frame.Frame, title string) (*CombinedFigure, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = f.IndexName()
	p.Legend.Top = true

	var lines []*plotter.Line
	for i, name := range f.ValueColumns() {
		line, err := newLine(f, name, i)
		if err != nil {
			return nil, err
		}
		p.Add(line)
		p.Legend.Add(name, line)
		lines = append(lines, line)
	}
	return &CombinedFigure{Plot: p, Lines: lines}, nil
}

func (c *CombinedFigure) Plots() []*plot.Plot {
	return []*plot.Plot{c.Plot}
}

func (c *CombinedFigure) Draw(dc draw.Canvas) {
	c.Plot.Draw(dc)
}

// SubplotFigure draws one plot per value column, stacked top to bottom
// in declaration order, with an optional figure-level caption.
type SubplotFigure struct {
	Title      string
	TitleStyle draw.TextStyle

	plots []*plot.Plot
}

// Subplots builds one axes region per value column. All regions share
// the index's x-range; only the bottom one is labelled with the index
// name.
func Subplots(f *frame.Frame, title string) (*SubplotFigure, error) {
	values := f.ValueColumns()

	xmin, xmax := xrange(f.Index())
	var plots []*plot.Plot
	for i, name := range values {
		p := plot.New()
		line, err := newLine(f, name, i)
		if err != nil {
			return nil, err
		}
		p.Add(line)
		p.Legend.Add(name, line)
		p.Legend.Top = true
		p.X.Min = xmin
		p.X.Max = xmax
		if i == len(values)-1 {
			p.X.Label.Text = f.IndexName()
		}
		plots = append(plots, p)
	}

	return &SubplotFigure{
		Title: title,
		TitleStyle: text.Style{
			Color:   color.Black,
			Font:    font.From(plotter.DefaultFont, plotter.DefaultFontSize*1.5),
			XAlign:  draw.XCenter,
			YAlign:  draw.YTop,
			Handler: plot.DefaultTextHandler,
		},
		plots: plots,
	}, nil
}

func xrange(index []float64) (min, max float64) {
	if len(index) == 0 {
		return 0, 1
	}
	min, max = index[0], index[0]
	for _, x := range index[1:] {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	if min == max {
		// degenerate range; widen so the axis stays drawable
		min, max = min-1, max+1
	}
	return min, max
}

func (s *SubplotFigure) Plots() []*plot.Plot {
	return s.plots
}

func (s *SubplotFigure) Draw(dc draw.Canvas) {
	if s.Title != "" {
		dc.FillText(s.TitleStyle, vg.Point{
			X: (dc.Min.X + dc.Max.X) / 2,
			Y: dc.Max.Y,
		}, s.Title)
		dc = draw.Crop(dc, 0, 0, 0, -s.TitleStyle.Font.Size*2)
	}

	tiles := draw.Tiles{
		Rows: len(s.plots),
		Cols: 1,
		PadY: vg.Points(2),
	}
	rows := make([][]*plot.Plot, len(s.plots))
	for i, p := range s.plots {
		rows[i] = []*plot.Plot{p}
	}
	canvases := plot.Align(rows, tiles, dc)
	for i, p := range s.plots {
		p.Draw(canvases[i][0])
	}
}
