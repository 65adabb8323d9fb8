// Package oriscan provides a high-level API for locating candidate
// origin-of-replication regions on circular bacterial genomes.
//
// The pipeline follows the cumulative GC-skew of the genome to its global
// minimum, then searches a window around each minimum for the short consensus
// motif that recurs most often on either strand, allowing point mismatches.
//
// Example usage:
//
//	genome, err := oriscan.NewSequence(bases)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reports, err := oriscan.Scan(genome, oriscan.Params{
//	    WindowLength:  500,
//	    K:             9,
//	    MaxMismatches: 1,
//	})
//	for _, r := range reports {
//	    fmt.Printf("minimum at %d: %v (%d hits)\n", r.Position, r.Motifs.TopKmers, r.Motifs.TopCount)
//	}
package oriscan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oriscan/oriscan-go/internal/motif"
	"github.com/oriscan/oriscan-go/internal/origin"
	"github.com/oriscan/oriscan-go/internal/sequence"
	"github.com/oriscan/oriscan-go/internal/skew"
	"github.com/oriscan/oriscan-go/internal/window"
)

// Re-export types for convenience
type (
	Sequence    = sequence.Sequence
	BaseCounts  = sequence.BaseCounts
	SkewCurve   = skew.Curve
	Window      = window.Window
	MotifResult = motif.Result
	Params      = origin.Params
	Report      = origin.Report
)

// NewSequence creates a new validated DNA sequence.
func NewSequence(bases string) (*Sequence, error) {
	return sequence.New(bases)
}

// NewSequenceWithID creates a new sequence with an identifier.
func NewSequenceWithID(bases, id string) (*Sequence, error) {
	return sequence.WithID(bases, id)
}

// ReverseComplement computes the reverse complement of a raw base string.
func ReverseComplement(bases string) (string, error) {
	return sequence.ReverseComplement(bases)
}

// ComputeSkew calculates the cumulative GC-skew curve of a genome.
func ComputeSkew(genome *Sequence) (SkewCurve, error) {
	return skew.Compute(genome)
}

// SkewMinima returns the positions where the skew curve freshly reaches its
// global minimum (the C-reaching policy used by Scan).
func SkewMinima(genome *Sequence, curve SkewCurve) []int {
	return skew.Minima(genome, curve)
}

// AllSkewMinima returns every position at the global minimum of the curve.
func AllSkewMinima(curve SkewCurve) []int {
	return skew.AllMinima(curve)
}

// ExtractWindow slices a window of the given length centered on a position,
// truncated at genome boundaries.
func ExtractWindow(genome *Sequence, center, length int) (*Window, error) {
	return window.Extract(genome, center, length)
}

// Neighborhood returns every k-mer within the given Hamming distance of seed.
func Neighborhood(seed string, maxMismatches int) map[string]struct{} {
	return motif.Neighborhood(seed, maxMismatches)
}

// CountApproxOccurrences counts sliding-window matches of pattern in haystack
// within the given substitution budget.
func CountApproxOccurrences(haystack, pattern string, maxMismatches int) int {
	return motif.CountApproxOccurrences(haystack, pattern, maxMismatches)
}

// FindMostFrequentKmers searches a window for the most frequent approximate
// k-mers, scoring both strands.
func FindMostFrequentKmers(windowBases string, k, maxMismatches int) (*MotifResult, error) {
	return motif.FindMostFrequentKmers(windowBases, k, maxMismatches)
}

// Scan runs the full origin scan over a genome.
func Scan(genome *Sequence, params Params) ([]Report, error) {
	return origin.Scan(genome, params)
}

// ParseFASTA parses FASTA-format records from a reader.
//
// Records start with a '>' header line holding an identifier and optional
// description; sequence data may span multiple lines. Input without a header
// is accepted as a single anonymous record, matching the plain-text genome
// files the original skew tooling consumed.
func ParseFASTA(r io.Reader) ([]*Sequence, error) {
	sequences := make([]*Sequence, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var id, description string
	var builder strings.Builder
	started := false

	flush := func() error {
		if builder.Len() == 0 {
			if started && id != "" {
				return fmt.Errorf("record %q has no sequence data", id)
			}
			return nil
		}

		seq, err := sequence.New(builder.String())
		if err != nil {
			return fmt.Errorf("record %q: %w", id, err)
		}
		seq.ID = id
		seq.Description = description

		sequences = append(sequences, seq)
		builder.Reset()
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}

			header := strings.TrimSpace(line[1:])
			if fields := strings.SplitN(header, " ", 2); len(fields) == 2 {
				id, description = fields[0], fields[1]
			} else {
				id, description = header, ""
			}
			started = true
			continue
		}

		builder.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return sequences, nil
}

// ReadFASTA reads sequences from a FASTA file.
func ReadFASTA(filename string) ([]*Sequence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseFASTA(file)
}

// ScanFile loads the first sequence of a FASTA file and runs the origin scan
// over it.
func ScanFile(filename string, params Params) ([]Report, error) {
	sequences, err := ReadFASTA(filename)
	if err != nil {
		return nil, err
	}
	if len(sequences) == 0 {
		return nil, fmt.Errorf("no sequences found in %s", filename)
	}

	return Scan(sequences[0], params)
}

// Version returns the oriscan version.
func Version() string {
	return "1.0.0"
}

// Info returns information about oriscan.
func Info() string {
	return fmt.Sprintf(`oriscan v%s - Origin-of-Replication Locator

Finds candidate oriC regions on circular bacterial genomes.

Features:
  - DNA sequence handling with validation
  - Cumulative GC-skew curve and global minima
  - Window extraction around skew minima
  - Hamming-bounded neighborhood generation
  - Approximate motif search on both strands
  - FASTA file parsing
`, Version())
}
