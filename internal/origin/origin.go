// Package origin orchestrates the full oriC scan: skew-curve minima, window
// extraction around each minimum, and the approximate motif search inside
// each window. It is a pure transform over an in-memory genome; loading and
// presentation live in the outer layers.
package origin

import (
	"fmt"

	"github.com/oriscan/oriscan-go/internal/motif"
	"github.com/oriscan/oriscan-go/internal/sequence"
	"github.com/oriscan/oriscan-go/internal/skew"
	"github.com/oriscan/oriscan-go/internal/window"
)

// Params are the caller-supplied search parameters.
type Params struct {
	WindowLength  int // W: length of the window around each skew minimum
	K             int // K: consensus k-mer length, 1 <= K <= W
	MaxMismatches int // M: substitution budget, 0 <= M < K
}

// OriginError is the base error type for origin scans.
type OriginError interface {
	error
	IsOriginError()
}

// InvalidParametersError is returned when scan parameters violate their
// constraints.
type InvalidParametersError struct {
	Reason string
}

func (e *InvalidParametersError) Error() string {
	return fmt.Sprintf("invalid parameters: %s", e.Reason)
}

func (e *InvalidParametersError) IsOriginError() {}

// Validate checks W > 0, 1 <= K <= W and 0 <= M < K, reporting the first
// violated constraint.
func (p Params) Validate() error {
	switch {
	case p.WindowLength <= 0:
		return &InvalidParametersError{Reason: fmt.Sprintf("window length %d must be positive", p.WindowLength)}
	case p.K <= 0:
		return &InvalidParametersError{Reason: fmt.Sprintf("k-mer length %d must be positive", p.K)}
	case p.K > p.WindowLength:
		return &InvalidParametersError{Reason: fmt.Sprintf("k-mer length %d exceeds window length %d", p.K, p.WindowLength)}
	case p.MaxMismatches < 0:
		return &InvalidParametersError{Reason: fmt.Sprintf("mismatch budget %d must be non-negative", p.MaxMismatches)}
	case p.MaxMismatches >= p.K:
		return &InvalidParametersError{Reason: fmt.Sprintf("mismatch budget %d must be below k-mer length %d", p.MaxMismatches, p.K)}
	}
	return nil
}

// Report is the result for one detected skew minimum: its position, the
// window searched around it, and the most frequent motifs found inside.
type Report struct {
	Position int
	Window   string
	Motifs   motif.Result
}

// Scan locates candidate origin regions in a genome.
//
// The skew curve is computed once; for every position where it freshly
// reaches its global minimum (see skew.Minima), a window of
// params.WindowLength is extracted and searched for the most frequent
// approximate k-mers on either strand. Reports come back in ascending
// position order.
func Scan(genome *sequence.Sequence, params Params) ([]Report, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.WindowLength > genome.Len() {
		return nil, &InvalidParametersError{
			Reason: fmt.Sprintf("window length %d exceeds genome length %d", params.WindowLength, genome.Len()),
		}
	}

	curve, err := skew.Compute(genome)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, 0)
	for _, pos := range skew.Minima(genome, curve) {
		w, err := window.Extract(genome, pos, params.WindowLength)
		if err != nil {
			return nil, err
		}

		result, err := motif.FindMostFrequentKmers(w.Seq.Bases, params.K, params.MaxMismatches)
		if err != nil {
			return nil, err
		}

		reports = append(reports, Report{
			Position: pos,
			Window:   w.Seq.Bases,
			Motifs:   *result,
		})
	}

	return reports, nil
}
