package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriscan/oriscan-go/internal/sequence"
)

func TestFindMostFrequentKmersInvalidParameters(t *testing.T) {
	tests := []struct {
		name          string
		k             int
		maxMismatches int
	}{
		{"zero k", 0, 1},
		{"negative k", -2, 1},
		{"negative mismatches", 4, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FindMostFrequentKmers("ATGCATGC", tt.k, tt.maxMismatches)
			require.Error(t, err)
			assert.IsType(t, &InvalidParameterError{}, err)
		})
	}
}

func TestFindMostFrequentKmersInvalidWindow(t *testing.T) {
	_, err := FindMostFrequentKmers("ATGXC", 2, 0)
	require.Error(t, err)
	assert.IsType(t, &sequence.InvalidBaseError{}, err)
}

func TestFindMostFrequentKmersShortWindow(t *testing.T) {
	result, err := FindMostFrequentKmers("ATG", 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, result.TopCount)
	assert.Empty(t, result.TopKmers)
}

func TestFindMostFrequentKmersExact(t *testing.T) {
	// m=0 over AAAAA: the only candidate is AA, with 4 forward occurrences
	// and none on the reverse strand.
	result, err := FindMostFrequentKmers("AAAAA", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, result.TopCount)
	assert.Equal(t, []string{"AA"}, result.TopKmers)
}

func TestFindMostFrequentKmersStrandSymmetry(t *testing.T) {
	// AT is its own reverse complement, so each of its 2 forward occurrences
	// counts on both strands: 4 hits. TA scores 1+1.
	result, err := FindMostFrequentKmers("ATAT", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, result.TopCount)
	assert.Equal(t, []string{"AT"}, result.TopKmers)
}

// Core regression: the classic frequent-words-with-mismatches-and-reverse-
// complements exercise. ATGT scores 5 forward + 4 via its reverse complement
// ACAT; ACAT scores the mirror 4+5; nothing else reaches 9.
func TestFindMostFrequentKmersClassic(t *testing.T) {
	result, err := FindMostFrequentKmers("ACGTTGCATGTCGCATGATGCATGAGAGCT", 4, 1)
	require.NoError(t, err)

	assert.Equal(t, 9, result.TopCount)
	assert.Equal(t, []string{"ACAT", "ATGT"}, result.TopKmers)
}

func TestFindMostFrequentKmersDeterministic(t *testing.T) {
	window := "ACGTTGCATGTCGCATGATGCATGAGAGCT"

	first, err := FindMostFrequentKmers(window, 4, 1)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := FindMostFrequentKmers(window, 4, 1)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestFindMostFrequentKmersLowercaseWindow(t *testing.T) {
	upper, err := FindMostFrequentKmers("ACGTTGCATGTCGCATGATGCATGAGAGCT", 4, 1)
	require.NoError(t, err)

	lower, err := FindMostFrequentKmers("acgttgcatgtcgcatgatgcatgagagct", 4, 1)
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

// Every reported k-mer's score must equal the reported top count when
// recomputed directly.
func TestFindMostFrequentKmersScoresConsistent(t *testing.T) {
	window := "TACGCCTAGGCATTACGCA"
	result, err := FindMostFrequentKmers(window, 3, 1)
	require.NoError(t, err)
	require.NotEmpty(t, result.TopKmers)

	for _, kmer := range result.TopKmers {
		rc, err := sequence.ReverseComplement(kmer)
		require.NoError(t, err)

		hits := CountApproxOccurrences(window, kmer, 1) + CountApproxOccurrences(window, rc, 1)
		assert.Equal(t, result.TopCount, hits, "kmer %s", kmer)
	}
}

func BenchmarkFindMostFrequentKmers(b *testing.B) {
	window := "ACGTTGCATGTCGCATGATGCATGAGAGCTACGTTGCATGTCGCATGATGCATGAGAGCT"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = FindMostFrequentKmers(window, 6, 1)
	}
}
