// Package window extracts fixed-length genome windows centered on a position.
//
// The genome is biologically circular but indexing here is linear: a window
// that runs past either end of the genome is truncated, never wrapped. A
// truncated window may come out shorter than requested; callers that need a
// minimum usable length check the result.
package window

import (
	"fmt"

	"github.com/oriscan/oriscan-go/internal/sequence"
)

// Window is a contiguous subsequence around a center position.
type Window struct {
	Seq    *sequence.Sequence
	Center int
	Length int // requested length, before any truncation
	Start  int // actual bounds after clamping
	End    int
}

// WindowError is the base error type for window extraction.
type WindowError interface {
	error
	IsWindowError()
}

// InvalidLengthError is returned for a non-positive or oversized window length.
type InvalidLengthError struct {
	Length int
	Genome int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("window length %d invalid for genome of length %d", e.Length, e.Genome)
}

func (e *InvalidLengthError) IsWindowError() {}

// CenterOutOfRangeError is returned when the center lies outside the genome.
type CenterOutOfRangeError struct {
	Center int
	Genome int
}

func (e *CenterOutOfRangeError) Error() string {
	return fmt.Sprintf("center %d out of range for genome of length %d", e.Center, e.Genome)
}

func (e *CenterOutOfRangeError) IsWindowError() {}

// Extract slices the window [center-length/2, center+length/2) out of the
// genome, using floor division for the lower bound and clamping both bounds
// to [0, genome length).
func Extract(genome *sequence.Sequence, center, length int) (*Window, error) {
	if length <= 0 || length > genome.Len() {
		return nil, &InvalidLengthError{Length: length, Genome: genome.Len()}
	}
	if center < 0 || center >= genome.Len() {
		return nil, &CenterOutOfRangeError{Center: center, Genome: genome.Len()}
	}

	start := center - length/2
	end := center + length/2
	if start < 0 {
		start = 0
	}
	if end > genome.Len() {
		end = genome.Len()
	}

	seq, err := genome.Subsequence(start, end)
	if err != nil {
		return nil, err
	}

	return &Window{
		Seq:    seq,
		Center: center,
		Length: length,
		Start:  start,
		End:    end,
	}, nil
}

// Truncated reports whether the window was cut short at a genome boundary.
func (w *Window) Truncated() bool {
	return w.End-w.Start < w.Length
}
