// Command oscgen emits the oscillator solution as header-less CSV on
// stdout, in the shapes the plotting commands expect: three columns by
// default, nine with --sens.
package main

import (
	"bufio"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"odeplot/osc"
)

func writeRow(w io.Writer, values []float64) error {
	buf := make([]byte, 0, 16*len(values))
	for i, v := range values {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	}
	buf = append(buf, '\n')
	_, err := w.Write(buf)
	return err
}

func emit(w io.Writer, o osc.Oscillator, steps int, dt float64, sens bool) error {
	if err := o.Validate(); err != nil {
		return err
	}
	for i := 0; i < steps; i++ {
		t := float64(i) * dt
		x, v := o.State(t)
		row := []float64{t, x, v}
		if sens {
			s := o.At(t)
			row = append(row, s.DxDx0, s.DvDx0, s.DxDv0, s.DvDv0, s.DxDk, s.DvDk)
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	var (
		o     osc.Oscillator
		steps int
		dt    float64
		sens  bool
	)

	cmd := &cobra.Command{
		Use:           "oscgen",
		Short:         "Emit oscillator solution traces as CSV on stdout",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := bufio.NewWriter(os.Stdout)
			if err := emit(w, o, steps, dt, sens); err != nil {
				return err
			}
			return w.Flush()
		},
	}

	cmd.Flags().Float64Var(&o.X0, "x0", 0, "initial position")
	cmd.Flags().Float64Var(&o.V0, "v0", 1, "initial velocity")
	cmd.Flags().Float64VarP(&o.K, "stiffness", "k", 1, "oscillator stiffness")
	cmd.Flags().IntVar(&steps, "steps", 100, "number of output rows")
	cmd.Flags().Float64Var(&dt, "dt", 1, "time step between rows")
	cmd.Flags().BoolVar(&sens, "sens", false, "include the six sensitivity columns")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
