package lineplot

import (
	"image"
	"image/png"
	"log"
	"os"
	"path"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// FigureWidget renders a Figure into a gio window through a cached
// raster image, regenerated off the UI goroutine when the window is
// resized.
type FigureWidget struct {
	Figure    Figure
	DPI       int
	ExportDir string
	AdjWidth  vg.Length
	AdjHeight vg.Length

	Busy  bool
	Ready chan image.Image
	Image image.Image
}

func (w *FigureWidget) GenImage(width, height vg.Length) image.Image {
	c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(w.DPI))
	w.Figure.Draw(draw.New(c))
	return c.Image()
}

func (w *FigureWidget) OnReady(ready image.Image) {
	if !w.Busy {
		panic("should be busy")
	}
	w.Image = ready
	w.Busy = false
}

func (w *FigureWidget) GetImage(size image.Point) image.Image {
	wAdjusted := vg.Points(float64(size.X) * vg.Inch.Points() / float64(w.DPI))
	hAdjusted := vg.Points(float64(size.Y) * vg.Inch.Points() / float64(w.DPI))
	if w.Image == nil {
		w.Image = w.GenImage(wAdjusted, hAdjusted)
		w.AdjWidth = wAdjusted
		w.AdjHeight = hAdjusted
	} else if w.AdjWidth != wAdjusted || w.AdjHeight != hAdjusted {
		if !w.Busy {
			w.Busy = true
			go func() {
				w.Ready <- w.GenImage(wAdjusted, hAdjusted)
			}()
			w.AdjWidth = wAdjusted
			w.AdjHeight = hAdjusted
		}
	}

	return w.Image
}

func (w *FigureWidget) Layout(gtx layout.Context) layout.Dimensions {
	defer op.Save(gtx.Ops).Load()

	clip.Rect{
		Max: gtx.Constraints.Max,
	}.Add(gtx.Ops)
	paint.NewImageOp(w.GetImage(gtx.Constraints.Max)).Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	return layout.Dimensions{Size: gtx.Constraints.Max}
}

func (w *FigureWidget) Export() {
	if w.ExportDir == "" || w.Image == nil {
		return
	}
	filepath := path.Join(w.ExportDir, "snapshot.png")
	f, err := os.Create(filepath)
	if err != nil {
		log.Fatal(err)
	}
	err = png.Encode(f, w.Image)
	if err != nil {
		log.Fatal(err)
	}
	err = f.Close()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Snapshot exported to %s", filepath)
}

// Display opens an interactive window showing the figure and blocks
// until the window is closed. Q or Escape closes the window.
func Display(fig Figure) error {
	return DisplayExportable(fig, "")
}

// DisplayExportable is Display with an optional snapshot directory;
// when set, pressing E writes the current raster there as a PNG.
func DisplayExportable(fig Figure, exportDir string) error {
	widget := &FigureWidget{
		Figure:    fig,
		DPI:       128,
		ExportDir: exportDir,
		Ready:     make(chan image.Image),
	}

	go func() {
		win := app.NewWindow(
			app.Title("odeplot"),
			app.Size(
				unit.Px(1024),
				unit.Px(768),
			),
		)
		defer win.Close()

		for {
			select {
			case ready := <-widget.Ready:
				widget.OnReady(ready)
				win.Invalidate()
			case e := <-win.Events():
				switch e := e.(type) {
				case system.FrameEvent:
					ops := new(op.Ops)
					gtx := layout.NewContext(ops, e)
					layout.UniformInset(unit.Dp(12)).Layout(gtx, widget.Layout)
					e.Frame(ops)

				case key.Event:
					switch e.Name {
					case "Q", key.NameEscape:
						win.Close()
					case "E":
						if e.State == key.Press {
							widget.Export()
						}
					}

				case system.DestroyEvent:
					os.Exit(0)
				}
			}
		}
	}()

	app.Main()
	return nil
}
