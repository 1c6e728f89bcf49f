package frame

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sensColumns = []string{
	"t", "x", `\dot{x}`,
	"dx_dx0", `d\dot{x}_dx0`,
	`dx_d\dot{x}0`, `d\dot{x}_d\dot{x}0`,
	"dx_dk", `d\dot{x}_dk`,
}

func TestLoadNineColumns(t *testing.T) {
	input := "0,1,0,1,0,0,1,0,0\n1,0.5,-0.5,0.9,-0.1,0.05,0.95,0.01,-0.02\n"
	f, err := Load(strings.NewReader(input), sensColumns, "t")
	require.NoError(t, err)

	assert.Equal(t, 2, f.Len())
	assert.Equal(t, "t", f.IndexName())
	assert.Equal(t, []float64{0, 1}, f.Index())

	values := f.ValueColumns()
	require.Len(t, values, 8)
	for _, name := range values {
		assert.Len(t, f.Column(name), 2, "column %q", name)
	}
	assert.Equal(t, []float64{1, 0.5}, f.Column("x"))
	assert.Equal(t, []float64{0.01, -0.02}, f.Column("dx_dk"))
}

func TestLoadThreeColumns(t *testing.T) {
	input := "0,1,0\n1,0.8,-0.2\n2,0.6,-0.3\n"
	f, err := Load(strings.NewReader(input), []string{"t", "x", `\dot{x}`}, "t")
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2}, f.Index())
	assert.Equal(t, []string{"x", `\dot{x}`}, f.ValueColumns())
	assert.Equal(t, []float64{1, 0.8, 0.6}, f.Column("x"))
	assert.Equal(t, []float64{0, -0.2, -0.3}, f.Column(`\dot{x}`))
}

func TestLoadShortRowFails(t *testing.T) {
	_, err := Load(strings.NewReader("0,1\n"), sensColumns, "t")
	require.Error(t, err)
}

func TestLoadNonNumericFails(t *testing.T) {
	_, err := Load(strings.NewReader("0,one,0\n"), []string{"t", "x", "v"}, "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "x"`)
}

func TestLoadIndexMustBeDeclared(t *testing.T) {
	_, err := Load(strings.NewReader(""), []string{"t", "x"}, "time")
	require.Error(t, err)
}

func TestLoadRejectsDuplicateColumns(t *testing.T) {
	_, err := Load(strings.NewReader(""), []string{"t", "x", "x"}, "t")
	require.Error(t, err)
}

func TestLoadEmptyInput(t *testing.T) {
	f, err := Load(strings.NewReader(""), []string{"t", "x"}, "t")
	require.NoError(t, err)
	assert.Equal(t, 0, f.Len())
	assert.Empty(t, f.Index())
}

func TestLoadDeterministic(t *testing.T) {
	input := "0,1,0\n1,0.8,-0.2\n2,0.6,-0.3\n"
	columns := []string{"t", "x", `\dot{x}`}

	first, err := Load(strings.NewReader(input), columns, "t")
	require.NoError(t, err)
	second, err := Load(strings.NewReader(input), columns, "t")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
