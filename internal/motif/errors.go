package motif

import "fmt"

// MotifError is the base error type for motif search operations.
type MotifError interface {
	error
	IsMotifError()
}

// InvalidParameterError is returned when a search parameter is out of range.
type InvalidParameterError struct {
	Name  string
	Value int
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%d", e.Name, e.Value)
}

func (e *InvalidParameterError) IsMotifError() {}

// LengthMismatchError is returned when comparing sequences of unequal length.
type LengthMismatchError struct {
	LenA int
	LenB int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d vs %d", e.LenA, e.LenB)
}

func (e *LengthMismatchError) IsMotifError() {}
