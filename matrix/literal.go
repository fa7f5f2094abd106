package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Literal separators accepted by Parse.
const (
	rowSep  = ";"
	cellSep = ","
)

// Of builds a matrix from literal rows, all of the same width:
//
//	m, err := matrix.Of([]int{10, 20, 30}, []int{40, 50, 60})
//
// Of() returns an empty matrix with zero columns. Row errors are those of
// Extend: ErrEmptyRow or ErrWrongLength.
func Of[E any](rows ...[]E) (*Matrix[E], error) {
	if len(rows) == 0 {
		return NewEmpty[E](0), nil
	}
	m := NewEmpty[E](len(rows[0]))
	for i, row := range rows {
		if err := m.Extend(row); err != nil {
			return nil, fmt.Errorf("Of: row %d: %w", i, err)
		}
	}

	return m, nil
}

// MustOf is like Of but panics if the rows are inconsistent.
// Use it for package-level fixtures and tests.
func MustOf[E any](rows ...[]E) *Matrix[E] {
	m, err := Of(rows...)
	if err != nil {
		panic(panicInconsistentWidth + ": " + err.Error())
	}

	return m
}

// Parse reads the flat literal form: rows separated by ';', cells by ','.
//
//	m, err := matrix.Parse("10, 20, 30; 40, 50, 60", strconv.Atoi)
//
// A trailing ';' is allowed and blank input yields an empty matrix.
// Cell conversion errors are wrapped with the cell position; row shape
// errors are those of Of.
func Parse[E any](s string, parse func(string) (E, error)) (*Matrix[E], error) {
	if strings.TrimSpace(s) == "" {
		return Of[E]()
	}
	segments := strings.Split(s, rowSep)
	if last := len(segments) - 1; strings.TrimSpace(segments[last]) == "" {
		segments = segments[:last]
	}

	rows := make([][]E, 0, len(segments))
	for r, seg := range segments {
		if strings.TrimSpace(seg) == "" {
			rows = append(rows, nil)
			continue
		}
		fields := strings.Split(seg, cellSep)
		row := make([]E, 0, len(fields))
		for c, f := range fields {
			v, err := parse(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("Parse: cell (%d,%d): %w", r, c, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return Of(rows...)
}

// ParseInts is Parse with base-10 integer cells.
func ParseInts(s string) (*Matrix[int], error) {
	return Parse(s, strconv.Atoi)
}
