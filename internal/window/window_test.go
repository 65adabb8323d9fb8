package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriscan/oriscan-go/internal/sequence"
)

func mustSeq(t *testing.T, bases string) *sequence.Sequence {
	t.Helper()
	seq, err := sequence.New(bases)
	require.NoError(t, err)
	return seq
}

func TestExtract(t *testing.T) {
	genome := mustSeq(t, "AACCGGTTAACCGGTTAACC") // length 20

	tests := []struct {
		name      string
		center    int
		length    int
		wantBases string
		wantStart int
		wantEnd   int
		truncated bool
	}{
		{"interior even", 10, 6, "TAACCG", 7, 13, false},
		{"interior odd uses floor", 10, 5, "AACC", 8, 12, false},
		{"clamped at left edge", 1, 8, "AACCG", 0, 5, true},
		{"clamped at right edge", 19, 8, "TAACC", 15, 20, true},
		{"whole genome", 10, 20, "AACCGGTTAACCGGTTAACC", 0, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Extract(genome, tt.center, tt.length)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBases, w.Seq.Bases)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
			assert.Equal(t, tt.truncated, w.Truncated())
		})
	}
}

func TestExtractErrors(t *testing.T) {
	genome := mustSeq(t, "ATGCATGC")

	_, err := Extract(genome, 4, 0)
	require.Error(t, err)
	assert.IsType(t, &InvalidLengthError{}, err)

	_, err = Extract(genome, 4, -3)
	require.Error(t, err)
	assert.IsType(t, &InvalidLengthError{}, err)

	_, err = Extract(genome, 4, 9)
	require.Error(t, err)
	assert.IsType(t, &InvalidLengthError{}, err)

	_, err = Extract(genome, 8, 4)
	require.Error(t, err)
	assert.IsType(t, &CenterOutOfRangeError{}, err)

	_, err = Extract(genome, -1, 4)
	require.Error(t, err)
	assert.IsType(t, &CenterOutOfRangeError{}, err)
}
