package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneSubstitutionVariants(t *testing.T) {
	variants := OneSubstitutionVariants("AC")

	// Seed plus 3 substitutions per position.
	assert.Len(t, variants, 7)
	assert.Contains(t, variants, "AC")
	assert.Contains(t, variants, "CC")
	assert.Contains(t, variants, "TC")
	assert.Contains(t, variants, "GC")
	assert.Contains(t, variants, "AA")
	assert.Contains(t, variants, "AT")
	assert.Contains(t, variants, "AG")
}

func TestOneSubstitutionVariantsAmbiguous(t *testing.T) {
	// N substitutes to all four concrete bases.
	variants := OneSubstitutionVariants("AN")
	assert.Len(t, variants, 8)
	for _, v := range []string{"AN", "CN", "TN", "GN", "AA", "AC", "AG", "AT"} {
		assert.Contains(t, variants, v)
	}
}

func TestNeighborhoodZeroMismatches(t *testing.T) {
	n := Neighborhood("ATGC", 0)
	require.Len(t, n, 1)
	assert.Contains(t, n, "ATGC")
}

func TestNeighborhoodSize(t *testing.T) {
	// For an N-free seed of length L, |Neighborhood(s, 1)| == 1 + 3L.
	tests := []struct {
		seed string
		want int
	}{
		{"A", 4},
		{"ACG", 10},
		{"ATGCATGC", 25},
	}

	for _, tt := range tests {
		t.Run(tt.seed, func(t *testing.T) {
			assert.Len(t, Neighborhood(tt.seed, 1), tt.want)
		})
	}
}

func TestNeighborhoodTwoMismatches(t *testing.T) {
	// L=3, m=2: 1 + C(3,1)*3 + C(3,2)*9 = 37.
	n := Neighborhood("ACG", 2)
	assert.Len(t, n, 37)

	// Distance-2 members are present, distance-3 are not.
	assert.Contains(t, n, "TTG")
	assert.NotContains(t, n, "TTT")
}

func TestNeighborhoodMonotonic(t *testing.T) {
	seed := "ATGCA"
	smaller := Neighborhood(seed, 1)
	larger := Neighborhood(seed, 2)

	assert.Greater(t, len(larger), len(smaller))
	for member := range smaller {
		assert.Contains(t, larger, member)
	}
}

func TestNeighborhoodPreservesLength(t *testing.T) {
	for member := range Neighborhood("ATGC", 2) {
		assert.Len(t, member, 4)
	}
}

func TestNeighborhoodMembersWithinDistance(t *testing.T) {
	seed := "ATGC"
	for member := range Neighborhood(seed, 2) {
		d, err := HammingDistance(seed, member)
		require.NoError(t, err)
		assert.LessOrEqual(t, d, 2)
	}
}

func BenchmarkNeighborhood(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Neighborhood("ATGATCAAG", 2)
	}
}
