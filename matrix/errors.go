package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for recoverable construction and slicing failures.
// Match them with errors.Is; constructors wrap them with the operation name.
var (
	// ErrEmptyRow is returned when a row, or the shape as a whole, would have
	// zero columns while having rows.
	ErrEmptyRow = errors.New("matrix: rows cannot be empty")

	// ErrWrongIndex is returned when a requested range does not lie inside the matrix.
	ErrWrongIndex = errors.New("matrix: index does not point inside the matrix")

	// ErrWrongLength is returned when the supplied data does not match the
	// expected number of elements.
	ErrWrongLength = errors.New("matrix: data does not match the expected length")
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEmptyRows          = "matrix: unable to create a matrix with empty rows"
	panicNegativeShape      = "matrix: dimensions must be non-negative"
	panicRowAccess          = "matrix: trying to access row %d (max %d)"
	panicColAccess          = "matrix: trying to access column %d (max %d)"
	panicRotateNonSquare    = "matrix: attempt to rotate a non-square matrix"
	panicTransposeEmptyRows = "matrix: this operation would create a matrix with empty rows"
	panicInconsistentWidth  = "matrix: all rows must have the same width"
)

// matrixErrorf wraps err with the failing operation for diagnostics while
// keeping the sentinel reachable through errors.Is.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
