package oriscan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFASTA(t *testing.T) {
	input := `>genome1 test chromosome
ATGCATGC
ATGC

>genome2
GGGCCC
`
	sequences, err := ParseFASTA(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, sequences, 2)

	assert.Equal(t, "genome1", sequences[0].ID)
	assert.Equal(t, "test chromosome", sequences[0].Description)
	assert.Equal(t, "ATGCATGCATGC", sequences[0].Bases)

	assert.Equal(t, "genome2", sequences[1].ID)
	assert.Equal(t, "", sequences[1].Description)
	assert.Equal(t, "GGGCCC", sequences[1].Bases)
}

func TestParseFASTAHeaderless(t *testing.T) {
	sequences, err := ParseFASTA(strings.NewReader("ATGC\nATGC\n"))
	require.NoError(t, err)
	require.Len(t, sequences, 1)
	assert.Equal(t, "ATGCATGC", sequences[0].Bases)
	assert.Equal(t, "", sequences[0].ID)
}

func TestParseFASTAInvalidBase(t *testing.T) {
	_, err := ParseFASTA(strings.NewReader(">bad\nATGXC\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid base")
}

func TestParseFASTAEmptyRecord(t *testing.T) {
	_, err := ParseFASTA(strings.NewReader(">empty\n>next\nATGC\n"))
	require.Error(t, err)
}

func TestParseFASTAEmptyInput(t *testing.T) {
	sequences, err := ParseFASTA(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, sequences)
}

// End-to-end through the facade: the hand-computed skew regression genome.
func TestScanEndToEnd(t *testing.T) {
	genome, err := NewSequence("CATGGGCATCGGCCATACGCC")
	require.NoError(t, err)

	curve, err := ComputeSkew(genome)
	require.NoError(t, err)
	assert.Equal(t, -2, curve.Min())
	assert.Equal(t, []int{20}, SkewMinima(genome, curve))

	reports, err := Scan(genome, Params{WindowLength: 10, K: 4, MaxMismatches: 1})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 20, reports[0].Position)
	assert.Equal(t, "TACGCC", reports[0].Window)
	assert.Equal(t, 2, reports[0].Motifs.TopCount)
}

func TestFacadeMotifSearch(t *testing.T) {
	result, err := FindMostFrequentKmers("ACGTTGCATGTCGCATGATGCATGAGAGCT", 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 9, result.TopCount)
	assert.Equal(t, []string{"ACAT", "ATGT"}, result.TopKmers)
}

func TestFacadeReverseComplement(t *testing.T) {
	rc, err := ReverseComplement("ATGT")
	require.NoError(t, err)
	assert.Equal(t, "ACAT", rc)
}

func TestFacadeHelpers(t *testing.T) {
	assert.Len(t, Neighborhood("ACG", 1), 10)
	assert.Equal(t, 4, CountApproxOccurrences("AAAAA", "AA", 0))
	assert.Contains(t, Info(), Version())
}
