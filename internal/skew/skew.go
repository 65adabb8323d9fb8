// Package skew computes cumulative GC-skew curves and their global minima.
//
// On the leading replication strand guanine accumulates relative to cytosine,
// so the running sum of (G count - C count) along a circular bacterial genome
// tends to reach its global minimum near the origin of replication. The curve
// here is that running sum: each base contributes a fixed delta (G: +1,
// C: -1, A/T/N: 0).
package skew

import (
	"github.com/oriscan/oriscan-go/internal/sequence"
)

// deltas maps each base to its skew contribution.
var deltas = map[byte]int{'A': 0, 'C': -1, 'G': 1, 'T': 0, 'N': 0}

// Curve is the cumulative GC-skew curve of a genome. It has the same length
// as the genome, and adjacent elements differ by at most 1.
type Curve []int

// SkewError is the base error type for skew operations.
type SkewError interface {
	error
	IsSkewError()
}

// EmptyCurveError is returned when a curve is requested for an empty genome.
type EmptyCurveError struct{}

func (e *EmptyCurveError) Error() string {
	return "cannot compute a skew curve for an empty genome"
}

func (e *EmptyCurveError) IsSkewError() {}

// Compute calculates the cumulative GC-skew curve for a genome.
//
// The genome has already been validated at construction, but the delta table
// lookup still rejects unknown bases so a hand-built Sequence cannot corrupt
// the curve silently.
func Compute(genome *sequence.Sequence) (Curve, error) {
	if genome == nil || genome.Len() == 0 {
		return nil, &EmptyCurveError{}
	}

	curve := make(Curve, genome.Len())
	sum := 0
	for i := 0; i < genome.Len(); i++ {
		delta, ok := deltas[genome.Bases[i]]
		if !ok {
			return nil, &sequence.InvalidBaseError{Position: i, Found: rune(genome.Bases[i])}
		}
		sum += delta
		curve[i] = sum
	}

	return curve, nil
}

// Min returns the global minimum value of the curve, or 0 for an empty curve.
func (c Curve) Min() int {
	if len(c) == 0 {
		return 0
	}

	min := c[0]
	for _, v := range c[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Minima returns the positions where the curve freshly reaches its global
// minimum: indices at the minimum value whose genome base is C, i.e. where
// the minimum was produced by a decrementing step rather than sustained
// through a neutral A/T/N stretch.
//
// This is the stricter of the two candidate policies (see AllMinima) and is
// the one the origin scan uses by default.
func Minima(genome *sequence.Sequence, curve Curve) []int {
	min := curve.Min()

	positions := make([]int, 0)
	for i, v := range curve {
		if v == min && i < genome.Len() && genome.Bases[i] == 'C' {
			positions = append(positions, i)
		}
	}
	return positions
}

// AllMinima returns every position at the global minimum of the curve,
// regardless of which base produced it.
func AllMinima(curve Curve) []int {
	min := curve.Min()

	positions := make([]int, 0)
	for i, v := range curve {
		if v == min {
			positions = append(positions, i)
		}
	}
	return positions
}
