package osc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialConditions(t *testing.T) {
	o := Oscillator{X0: 1, V0: 0, K: 1}

	x, v := o.State(0)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 0.0, v)

	s := o.At(0)
	assert.Equal(t, Sensitivities{DxDx0: 1, DvDv0: 1}, s)
}

func TestEnergyConserved(t *testing.T) {
	o := Oscillator{X0: 0.3, V0: 1.2, K: 2.5}
	e0 := o.Energy(0)
	for _, tm := range []float64{0.1, 1, 7, 42, 99} {
		assert.InDelta(t, e0, o.Energy(tm), 1e-9, "t=%v", tm)
	}
}

func TestSensitivitiesMatchFiniteDifferences(t *testing.T) {
	o := Oscillator{X0: 0.5, V0: -0.8, K: 1.7}
	const h = 1e-6

	for _, tm := range []float64{0.3, 2, 11} {
		s := o.At(tm)

		up, down := o, o
		up.X0 += h
		down.X0 -= h
		xu, vu := up.State(tm)
		xd, vd := down.State(tm)
		assert.InDelta(t, s.DxDx0, (xu-xd)/(2*h), 1e-5, "dx/dx0 at t=%v", tm)
		assert.InDelta(t, s.DvDx0, (vu-vd)/(2*h), 1e-5, "dv/dx0 at t=%v", tm)

		up, down = o, o
		up.V0 += h
		down.V0 -= h
		xu, vu = up.State(tm)
		xd, vd = down.State(tm)
		assert.InDelta(t, s.DxDv0, (xu-xd)/(2*h), 1e-5, "dx/dv0 at t=%v", tm)
		assert.InDelta(t, s.DvDv0, (vu-vd)/(2*h), 1e-5, "dv/dv0 at t=%v", tm)

		up, down = o, o
		up.K += h
		down.K -= h
		xu, vu = up.State(tm)
		xd, vd = down.State(tm)
		assert.InDelta(t, s.DxDk, (xu-xd)/(2*h), 1e-4, "dx/dk at t=%v", tm)
		assert.InDelta(t, s.DvDk, (vu-vd)/(2*h), 1e-4, "dv/dk at t=%v", tm)
	}
}

func TestValidate(t *testing.T) {
	require.Error(t, Oscillator{K: 0}.Validate())
	require.Error(t, Oscillator{K: -1}.Validate())
	require.NoError(t, Oscillator{K: 1}.Validate())
}
