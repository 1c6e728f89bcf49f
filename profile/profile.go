// Package profile describes a column layout for the plotting commands:
// which columns the input stream carries, which one is the index, and
// how the rest should be rendered. The two built-in profiles match the
// output shapes of the oscillator solver; ad-hoc layouts can be loaded
// from YAML.
package profile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"odeplot/lineplot"
)

// Profile declares the expected input columns and how to render them.
// Column names are opaque display labels and pass through verbatim.
type Profile struct {
	Columns []string      `yaml:"columns"`
	Index   string        `yaml:"index"`
	Mode    lineplot.Mode `yaml:"mode"`
	Title   string        `yaml:"title,omitempty"`
}

// Sensitivities is the nine-column solver output: state plus forward
// sensitivities with respect to x0, \dot{x}0, and k. One subplot per
// column under a shared caption.
var Sensitivities = Profile{
	Columns: []string{
		"t", "x", `\dot{x}`,
		"dx_dx0", `d\dot{x}_dx0`,
		`dx_d\dot{x}0`, `d\dot{x}_d\dot{x}0`,
		"dx_dk", `d\dot{x}_dk`,
	},
	Index: "t",
	Mode:  lineplot.ModeSubplots,
	Title: `\dotdot{x} = -k*x`,
}

// Phase is the three-column solver output: t, x, \dot{x}, drawn
// together on one set of axes with no title.
var Phase = Profile{
	Columns: []string{"t", "x", `\dot{x}`},
	Index:   "t",
	Mode:    lineplot.ModeCombined,
}

// Validate checks that the profile is internally consistent.
func (p Profile) Validate() error {
	if len(p.Columns) < 2 {
		return fmt.Errorf("profile needs an index column and at least one value column, got %v", p.Columns)
	}
	found := false
	for _, name := range p.Columns {
		if name == p.Index {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("index column %q not among declared columns %v", p.Index, p.Columns)
	}
	switch p.Mode {
	case lineplot.ModeCombined, lineplot.ModeSubplots:
	default:
		return fmt.Errorf("unknown render mode: %q", p.Mode)
	}
	return nil
}

// Load reads a YAML profile.
func Load(r io.Reader) (Profile, error) {
	var p Profile
	data, err := io.ReadAll(r)
	if err != nil {
		return Profile{}, err
	}
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return Profile{}, err
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// LoadFile reads a YAML profile from disk.
func LoadFile(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, err
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f)
}
