package dtw

import (
	"errors"

	"github.com/charmbracelet/log"
)

// MemoryMode controls how DTW stores its DP table.
type MemoryMode int

const (
	// FullMatrix keeps every row and supports path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows keeps only the current and previous row; no path recovery.
	TwoRows
)

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an invalid option value (Window < -1,
	// negative SlopePenalty or unknown MemoryMode).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// Options configures Dynamic Time Warping.
type Options struct {
	// Window is the Sakoe–Chiba band: cells with |i-j| > Window are not
	// reachable. -1 disables the constraint; 0 allows only the diagonal.
	Window int

	// SlopePenalty is added for every step that advances only one series.
	SlopePenalty float64

	// ReturnPath asks DTW to backtrack the optimal warping path.
	// Requires MemoryMode=FullMatrix.
	ReturnPath bool

	MemoryMode MemoryMode

	// Logger receives a debug record per computation.
	Logger *log.Logger
}

// DefaultOptions returns unconstrained FullMatrix options without path
// recovery or slope penalty.
func DefaultOptions() Options {
	return Options{
		Window:     -1,
		MemoryMode: FullMatrix,
		Logger:     log.Default(),
	}
}

func (o *Options) validate() error {
	switch {
	case o.Window < -1, o.SlopePenalty < 0:
		return ErrBadInput
	case o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows:
		return ErrBadInput
	case o.ReturnPath && o.MemoryMode != FullMatrix:
		return ErrPathNeedsMatrix
	}

	return nil
}
