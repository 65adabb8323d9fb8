// Package sequence provides a validated DNA sequence type.
//
// A Sequence is an immutable string over the alphabet {A, C, G, T, N},
// validated at construction time. All downstream analysis (skew curves,
// window extraction, motif search) operates on already-validated sequences,
// so invalid bases are rejected once, eagerly, at the boundary.
package sequence

import "strings"

// ValidBases is the fixed DNA alphabet, including the ambiguous base N.
var ValidBases = map[rune]bool{'A': true, 'C': true, 'G': true, 'T': true, 'N': true}

// complements maps each base to its Watson-Crick complement. N maps to N.
var complements = map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'N': 'N'}

// Sequence represents a validated DNA sequence.
//
// The invariant that every base belongs to the alphabet is established by New
// and never mutated afterwards.
type Sequence struct {
	Bases       string
	ID          string
	Description string
}

// New creates a new DNA sequence with validation.
//
// Lowercase input is normalized to uppercase. Returns EmptySequenceError for
// zero-length input and InvalidBaseError for any base outside {A, C, G, T, N}.
func New(bases string) (*Sequence, error) {
	normalized := strings.ToUpper(bases)

	if len(normalized) == 0 {
		return nil, &EmptySequenceError{}
	}

	if err := Validate(normalized); err != nil {
		return nil, err
	}

	return &Sequence{Bases: normalized}, nil
}

// WithID creates a new sequence with an identifier.
func WithID(bases, id string) (*Sequence, error) {
	seq, err := New(bases)
	if err != nil {
		return nil, err
	}

	seq.ID = id
	return seq, nil
}

// Len returns the length of the sequence.
func (s *Sequence) Len() int {
	return len(s.Bases)
}

// BaseAt returns the base at a specific index, or false if out of bounds.
func (s *Sequence) BaseAt(index int) (byte, bool) {
	if index < 0 || index >= len(s.Bases) {
		return 0, false
	}
	return s.Bases[index], true
}

// HasAmbiguous checks if the sequence contains any ambiguous bases (N).
func (s *Sequence) HasAmbiguous() bool {
	return strings.ContainsRune(s.Bases, 'N')
}

// CountAmbiguous counts the number of ambiguous bases.
func (s *Sequence) CountAmbiguous() int {
	return strings.Count(s.Bases, "N")
}

// Subsequence returns a slice of the sequence over [start, end).
func (s *Sequence) Subsequence(start, end int) (*Sequence, error) {
	if start < 0 || end <= start || end > len(s.Bases) {
		return nil, &BoundsError{Start: start, End: end, Length: len(s.Bases)}
	}

	return &Sequence{
		Bases:       s.Bases[start:end],
		ID:          s.ID,
		Description: s.Description,
	}, nil
}

// Complement returns the complement of the sequence (A<->T, C<->G, N->N).
func (s *Sequence) Complement() *Sequence {
	comp := make([]byte, len(s.Bases))
	for i := 0; i < len(s.Bases); i++ {
		comp[i] = complements[s.Bases[i]]
	}

	return &Sequence{
		Bases:       string(comp),
		ID:          s.ID,
		Description: s.Description,
	}
}

// Reverse returns the reverse of the sequence.
func (s *Sequence) Reverse() *Sequence {
	b := []byte(s.Bases)
	n := len(b)
	for i := 0; i < n/2; i++ {
		b[i], b[n-1-i] = b[n-1-i], b[i]
	}

	return &Sequence{
		Bases:       string(b),
		ID:          s.ID,
		Description: s.Description,
	}
}

// ReverseComplement returns the reverse complement of the sequence.
func (s *Sequence) ReverseComplement() *Sequence {
	return s.Complement().Reverse()
}

// ReverseComplement computes the reverse complement of a raw base string.
//
// Unlike the Sequence method it validates its input, since callers pass
// strings that never went through New (candidate k-mers, query patterns).
func ReverseComplement(bases string) (string, error) {
	rc := make([]byte, len(bases))
	for i := len(bases) - 1; i >= 0; i-- {
		comp, ok := complements[bases[i]]
		if !ok {
			return "", &InvalidBaseError{Position: i, Found: rune(bases[i])}
		}
		rc[len(bases)-1-i] = comp
	}
	return string(rc), nil
}

// GCContent calculates the GC content (proportion of G and C bases).
func (s *Sequence) GCContent() float64 {
	if len(s.Bases) == 0 {
		return 0.0
	}

	gcCount := 0
	for i := 0; i < len(s.Bases); i++ {
		if s.Bases[i] == 'G' || s.Bases[i] == 'C' {
			gcCount++
		}
	}

	return float64(gcCount) / float64(len(s.Bases))
}

// ATContent calculates the AT content (proportion of A and T bases).
//
// Origin regions sit in AT-rich stretches, so this is reported alongside
// GC content by the info surfaces.
func (s *Sequence) ATContent() float64 {
	if len(s.Bases) == 0 {
		return 0.0
	}

	atCount := 0
	for i := 0; i < len(s.Bases); i++ {
		if s.Bases[i] == 'A' || s.Bases[i] == 'T' {
			atCount++
		}
	}

	return float64(atCount) / float64(len(s.Bases))
}

// BaseCounts holds the count of each base type.
type BaseCounts struct {
	A int
	C int
	G int
	T int
	N int
}

// BaseCounts returns the count of each base type.
func (s *Sequence) BaseCounts() BaseCounts {
	counts := BaseCounts{}

	for i := 0; i < len(s.Bases); i++ {
		switch s.Bases[i] {
		case 'A':
			counts.A++
		case 'C':
			counts.C++
		case 'G':
			counts.G++
		case 'T':
			counts.T++
		case 'N':
			counts.N++
		}
	}

	return counts
}

// Total returns the total count of all bases.
func (bc BaseCounts) Total() int {
	return bc.A + bc.C + bc.G + bc.T + bc.N
}

func (s *Sequence) String() string {
	return s.Bases
}
