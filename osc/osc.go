// Package osc evaluates the harmonic oscillator \dotdot{x} = -k*x in
// closed form, including the forward sensitivities of the state with
// respect to the initial conditions and the stiffness. It exists so the
// plotting commands have a native data source with a known answer.
package osc

import (
	"fmt"
	"math"
)

// Oscillator is the initial value problem x(0) = X0, \dot{x}(0) = V0
// with \dotdot{x} = -K*x. K must be positive.
type Oscillator struct {
	X0 float64
	V0 float64
	K  float64
}

// Sensitivities are the partial derivatives of the state at a fixed
// time with respect to the problem parameters, in the column order the
// solver emits them.
type Sensitivities struct {
	DxDx0 float64
	DvDx0 float64
	DxDv0 float64
	DvDv0 float64
	DxDk  float64
	DvDk  float64
}

// Validate reports whether the problem is well-posed.
func (o Oscillator) Validate() error {
	if !(o.K > 0) {
		return fmt.Errorf("stiffness must be positive, got %v", o.K)
	}
	return nil
}

// State evaluates position and velocity at time t:
//
//	x(t) = x0 cos(wt) + (v0/w) sin(wt),  w = sqrt(k)
func (o Oscillator) State(t float64) (x, v float64) {
	w := math.Sqrt(o.K)
	sin, cos := math.Sincos(w * t)
	x = o.X0*cos + o.V0/w*sin
	v = -o.X0*w*sin + o.V0*cos
	return x, v
}

// At evaluates the sensitivities of the state at time t. The k
// derivatives go through w = sqrt(k), so dw/dk = 1/(2w).
func (o Oscillator) At(t float64) Sensitivities {
	w := math.Sqrt(o.K)
	sin, cos := math.Sincos(w * t)

	dxdw := -o.X0*t*sin + o.V0*(w*t*cos-sin)/(w*w)
	dvdw := -o.X0*(sin+w*t*cos) - o.V0*t*sin
	dwdk := 1 / (2 * w)

	return Sensitivities{
		DxDx0: cos,
		DvDx0: -w * sin,
		DxDv0: sin / w,
		DvDv0: cos,
		DxDk:  dxdw * dwdk,
		DvDk:  dvdw * dwdk,
	}
}

// Energy is the conserved quantity v^2/2 + k x^2/2 at time t.
func (o Oscillator) Energy(t float64) float64 {
	x, v := o.State(t)
	return v*v/2 + o.K*x*x/2
}
