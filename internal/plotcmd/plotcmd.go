// Package plotcmd builds the cobra command shared by the plotting
// entry points. Each binary bakes in a built-in profile; flags only add
// export options on top of the default read-stdin-and-display run.
package plotcmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gonum.org/v1/plot/vg"

	"odeplot"
	"odeplot/profile"
)

// New returns a command that reads CSV from stdin against the given
// built-in profile and renders it. Running with no flags opens an
// interactive window, as the bare scripts always did.
func New(use, short string, builtin profile.Profile) *cobra.Command {
	var (
		output      string
		format      string
		width       float64
		height      float64
		external    bool
		viewer      string
		snapshots   string
		profilePath string
	)

	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prof := builtin
			if profilePath != "" {
				var err error
				prof, err = profile.LoadFile(profilePath)
				if err != nil {
					return fmt.Errorf("profile %s: %v", profilePath, err)
				}
			}

			if output != "" && !cmd.Flags().Changed("format") {
				if ext := strings.TrimPrefix(filepath.Ext(output), "."); ext != "" {
					format = ext
				}
			}

			if term.IsTerminal(int(os.Stdin.Fd())) {
				fmt.Fprintln(os.Stderr, "reading CSV from standard input (Ctrl-D to finish)")
			}

			return odeplot.Run(prof, os.Stdin, odeplot.Options{
				Output:    output,
				Format:    format,
				Width:     vg.Length(width) * vg.Inch,
				Height:    vg.Length(height) * vg.Inch,
				External:  external,
				Viewer:    viewer,
				Snapshots: snapshots,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the figure to this file instead of opening a window")
	cmd.Flags().StringVar(&format, "format", "png", "image format for --output (png, svg, pdf, eps); defaults to the file extension when present")
	cmd.Flags().Float64Var(&width, "width", 10, "figure width in inches")
	cmd.Flags().Float64Var(&height, "height", 7.5, "figure height in inches")
	cmd.Flags().BoolVar(&external, "external", false, "render to a temporary PNG and open it with --viewer")
	cmd.Flags().StringVar(&viewer, "viewer", "xdg-open", "image viewer used by --external")
	cmd.Flags().StringVar(&snapshots, "snapshots", "", "directory for PNG snapshots taken with the E key")
	cmd.Flags().StringVar(&profilePath, "profile", "", "YAML profile overriding the built-in column layout")

	return cmd
}
