package lineplot

import (
	"io"
	"os"
	"os/exec"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// WriteFigure renders the figure at the given size and writes it in the
// given format (png, svg, pdf, eps).
func WriteFigure(fig Figure, width, height vg.Length, output io.Writer, format string) error {
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return err
	}
	fig.Draw(draw.New(c))
	_, err = c.WriteTo(output)
	return err
}

func combineErrors(errors ...error) (err error) {
	for _, e := range errors {
		switch {
		case e == nil:
			// ignore
		case err == nil:
			err = e
		default:
			err = multierror.Append(err, e)
		}
	}
	return err
}

// WriteCloseFigure writes the figure and closes the output, folding a
// close failure into the returned error.
func WriteCloseFigure(fig Figure, width, height vg.Length, output io.WriteCloser, format string) (err error) {
	defer func() {
		e := output.Close()
		err = combineErrors(err, e)
	}()
	return WriteFigure(fig, width, height, output, format)
}

// SaveFigure writes the figure to a new file at path.
func SaveFigure(fig Figure, width, height vg.Length, path string, format string) error {
	output, err := os.Create(path)
	if err != nil {
		return err
	}
	return WriteCloseFigure(fig, width, height, output, format)
}

// DisplayExternal renders the figure to a temporary PNG and hands it to
// an external image viewer, blocking until the viewer exits.
func DisplayExternal(fig Figure, width, height vg.Length, viewer string) (err error) {
	f, err := os.CreateTemp("", "odeplot-*.png")
	if err != nil {
		return err
	}
	defer func() {
		e := os.Remove(f.Name())
		err = combineErrors(err, e)
	}()
	if err := WriteCloseFigure(fig, width, height, f, "png"); err != nil {
		return err
	}
	return exec.Command(viewer, f.Name()).Run()
}
