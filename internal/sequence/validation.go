package sequence

import "fmt"

// SequenceError is the base error type for sequence operations.
type SequenceError interface {
	error
	IsSequenceError()
}

// EmptySequenceError is returned when a sequence is empty.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "sequence must have at least one base"
}

func (e *EmptySequenceError) IsSequenceError() {}

// InvalidBaseError is returned when a base outside {A, C, G, T, N} is encountered.
type InvalidBaseError struct {
	Position int
	Found    rune
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base '%c' at position %d", e.Found, e.Position)
}

func (e *InvalidBaseError) IsSequenceError() {}

// BoundsError is returned when a subsequence range is out of bounds.
type BoundsError struct {
	Start  int
	End    int
	Length int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("range [%d, %d) out of bounds for sequence of length %d", e.Start, e.End, e.Length)
}

func (e *BoundsError) IsSequenceError() {}

// Validate checks that a string contains only valid DNA bases.
func Validate(bases string) error {
	for i, b := range bases {
		if !ValidBases[b] {
			return &InvalidBaseError{Position: i, Found: b}
		}
	}
	return nil
}

// IsValidBase checks if a character is a valid DNA base.
func IsValidBase(c rune) bool {
	return ValidBases[c]
}
