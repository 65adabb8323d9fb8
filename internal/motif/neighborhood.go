// Package motif implements the approximate motif search at the heart of the
// origin scan: Hamming-bounded neighborhood generation, sliding-window
// approximate occurrence counting, and strand-symmetric selection of the most
// frequent k-mers in a window.
//
// Neighborhood size is the dominant cost of the whole search. For an N-free
// seed of length L and mismatch bound m the neighborhood holds
//
//	sum_{i=0..m} C(L,i) * 3^i
//
// k-mers, so the candidate pool grows exponentially in both k and m. Keep k
// and the mismatch bound small (the classic oriC search uses k=9, m=1).
package motif

// substitutions lists, for each base, the bases a single point mutation can
// replace it with. N substitutes to any concrete base.
var substitutions = map[byte][]byte{
	'A': {'C', 'T', 'G'},
	'T': {'A', 'C', 'G'},
	'G': {'A', 'T', 'C'},
	'C': {'A', 'T', 'G'},
	'N': {'C', 'A', 'T', 'G'},
}

// addSubstitutionVariants writes every single-substitution variant of seed,
// and seed itself, directly into target.
func addSubstitutionVariants(seed string, target map[string]struct{}) {
	target[seed] = struct{}{}

	buf := []byte(seed)
	for i := 0; i < len(buf); i++ {
		orig := buf[i]
		for _, sub := range substitutions[orig] {
			buf[i] = sub
			target[string(buf)] = struct{}{}
		}
		buf[i] = orig
	}
}

// OneSubstitutionVariants returns the seed plus every k-mer obtained by
// substituting exactly one position. Seed length is preserved; there are no
// insertions or deletions.
func OneSubstitutionVariants(seed string) map[string]struct{} {
	variants := make(map[string]struct{}, 1+3*len(seed))
	addSubstitutionVariants(seed, variants)
	return variants
}

// Neighborhood returns every k-mer within Hamming distance maxMismatches of
// seed, including the seed itself.
//
// The set starts as {seed} and is closed under single substitution once per
// allowed mismatch, so after m rounds it is exactly the Hamming ball of
// radius m. The result is monotone in maxMismatches.
func Neighborhood(seed string, maxMismatches int) map[string]struct{} {
	neighborhood := map[string]struct{}{seed: {}}

	for round := 0; round < maxMismatches; round++ {
		expanded := make(map[string]struct{}, len(neighborhood))
		for member := range neighborhood {
			addSubstitutionVariants(member, expanded)
		}
		neighborhood = expanded
	}

	return neighborhood
}
