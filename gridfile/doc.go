// Package gridfile reads and writes matrix.Matrix values as YAML or TOML
// documents.
//
// Both formats use one key, rows, holding a list of equally long rows:
//
//	# grid.yaml
//	rows: [[1, 0, 1], [1, 1, 0]]
//
//	# grid.toml
//	rows = [[1, 0, 1], [1, 1, 0]]
//
// Rows are validated exactly like matrix.Of, so a ragged document fails
// with matrix.ErrWrongLength and an empty row with matrix.ErrEmptyRow.
// A document without rows decodes to an empty matrix. A grid with no rows
// but a known width is written with an extra cols key so the width
// survives a round trip:
//
//	cols: 3
//	rows: []
//
// Load and Save pick the format from the file extension (.yaml, .yml,
// .toml) and return ErrUnknownFormat for anything else.
package gridfile
