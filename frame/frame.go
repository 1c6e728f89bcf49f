// Package frame holds the in-memory table that the plotting commands
// build from standard input. A Frame is constructed once per run from
// header-less CSV and never mutated afterwards.
package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Frame is a fixed set of named numeric series aligned by row, with one
// column designated as the index (the x-axis for display). Column names
// are opaque labels; notation like `\dot{x}` is passed through verbatim.
type Frame struct {
	names  []string
	index  string
	series map[string][]float64
	rows   int
}

// Load consumes the entire stream as comma-separated values with no
// header row. Every row must have exactly len(columns) fields; the
// index name must be one of the declared columns.
func Load(r io.Reader, columns []string, index string) (*Frame, error) {
	if len(columns) < 2 {
		return nil, fmt.Errorf("need an index column and at least one value column, got %v", columns)
	}
	series := map[string][]float64{}
	for _, name := range columns {
		if _, dup := series[name]; dup {
			return nil, fmt.Errorf("duplicate column name: %q", name)
		}
		series[name] = nil
	}
	if _, ok := series[index]; !ok {
		return nil, fmt.Errorf("index column %q not among declared columns %v", index, columns)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(columns)

	rows := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		for i, field := range row {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %v", rows+1, columns[i], err)
			}
			series[columns[i]] = append(series[columns[i]], value)
		}
		rows++
	}

	return &Frame{
		names:  columns,
		index:  index,
		series: series,
		rows:   rows,
	}, nil
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return f.rows
}

// IndexName returns the name of the index column.
func (f *Frame) IndexName() string {
	return f.index
}

// Index returns the index column's values in row order.
func (f *Frame) Index() []float64 {
	return f.series[f.index]
}

// Column returns the values of the named column, or nil if no such
// column was declared.
func (f *Frame) Column(name string) []float64 {
	return f.series[name]
}

// ValueColumns returns all declared column names except the index, in
// declaration order.
func (f *Frame) ValueColumns() []string {
	var names []string
	for _, name := range f.names {
		if name != f.index {
			names = append(names, name)
		}
	}
	return names
}
