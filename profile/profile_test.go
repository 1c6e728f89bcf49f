package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odeplot/lineplot"
)

func TestBuiltinsValidate(t *testing.T) {
	require.NoError(t, Sensitivities.Validate())
	require.NoError(t, Phase.Validate())

	assert.Len(t, Sensitivities.Columns, 9)
	assert.Equal(t, lineplot.ModeSubplots, Sensitivities.Mode)
	assert.Equal(t, `\dotdot{x} = -k*x`, Sensitivities.Title)

	assert.Len(t, Phase.Columns, 3)
	assert.Equal(t, lineplot.ModeCombined, Phase.Mode)
	assert.Equal(t, "", Phase.Title)
}

func TestValidateRejectsBadProfiles(t *testing.T) {
	err := Profile{Columns: []string{"t"}, Index: "t", Mode: lineplot.ModeCombined}.Validate()
	require.Error(t, err)

	err = Profile{Columns: []string{"t", "x"}, Index: "time", Mode: lineplot.ModeCombined}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"time"`)

	err = Profile{Columns: []string{"t", "x"}, Index: "t", Mode: "pie"}.Validate()
	require.Error(t, err)
}

func TestLoadYAML(t *testing.T) {
	input := `
columns: [t, x, "\\dot{x}"]
index: t
mode: subplots
title: oscillator
`
	p, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"t", "x", `\dot{x}`}, p.Columns)
	assert.Equal(t, "t", p.Index)
	assert.Equal(t, lineplot.ModeSubplots, p.Mode)
	assert.Equal(t, "oscillator", p.Title)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	input := `
columns: [t, x]
index: t
mode: combined
colour: red
`
	_, err := Load(strings.NewReader(input))
	require.Error(t, err)
}

func TestLoadValidates(t *testing.T) {
	input := `
columns: [t, x]
index: t
mode: pie
`
	_, err := Load(strings.NewReader(input))
	require.Error(t, err)
}
