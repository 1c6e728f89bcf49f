// Package odeplot reads numeric time-series CSV from a stream,
// interprets it against a declared column layout, and renders line
// plots either in an interactive window or to an image file.
package odeplot

import (
	"io"

	"gonum.org/v1/plot/vg"

	"odeplot/frame"
	"odeplot/lineplot"
	"odeplot/profile"
)

// Options controls where a run's figure ends up. The zero value means
// an interactive window.
type Options struct {
	// Output, when non-empty, writes the figure to this path instead of
	// opening a window.
	Output string
	// Format is the image format for Output (png, svg, pdf, eps).
	Format string
	// Width and Height size the exported figure.
	Width  vg.Length
	Height vg.Length
	// External hands the rendered figure to Viewer instead of the
	// built-in window.
	External bool
	Viewer   string
	// Snapshots is a directory for interactive PNG snapshots.
	Snapshots string
}

// Run consumes the entire stream as CSV per the profile, builds the
// figure, and displays or writes it. It blocks until the display is
// closed or the file is written.
func Run(p profile.Profile, r io.Reader, opts Options) error {
	if err := p.Validate(); err != nil {
		return err
	}
	f, err := frame.Load(r, p.Columns, p.Index)
	if err != nil {
		return err
	}
	fig, err := lineplot.Build(f, p.Mode, p.Title)
	if err != nil {
		return err
	}
	switch {
	case opts.Output != "":
		return lineplot.SaveFigure(fig, opts.Width, opts.Height, opts.Output, opts.Format)
	case opts.External:
		return lineplot.DisplayExternal(fig, opts.Width, opts.Height, opts.Viewer)
	default:
		return lineplot.DisplayExportable(fig, opts.Snapshots)
	}
}
