package motif

// HammingDistance counts the positions at which two equal-length strings
// differ. Returns LengthMismatchError when the lengths differ; this matcher
// models substitutions only, never insertions or deletions.
func HammingDistance(a, b string) (int, error) {
	if len(a) != len(b) {
		return 0, &LengthMismatchError{LenA: len(a), LenB: len(b)}
	}

	distance := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			distance++
		}
	}
	return distance, nil
}

// CountApproxOccurrences counts the start offsets in haystack (overlaps
// allowed) where the window of pattern's length is within maxMismatches
// substitutions of pattern. A pattern that is empty or longer than the
// haystack matches nowhere.
//
// With maxMismatches = 0 this is exactly the overlap-counted substring count.
func CountApproxOccurrences(haystack, pattern string, maxMismatches int) int {
	k := len(pattern)
	if k == 0 || k > len(haystack) || maxMismatches < 0 {
		return 0
	}

	count := 0
	for i := 0; i+k <= len(haystack); i++ {
		mismatches := 0
		for j := 0; j < k; j++ {
			if haystack[i+j] != pattern[j] {
				mismatches++
				if mismatches > maxMismatches {
					break
				}
			}
		}
		if mismatches <= maxMismatches {
			count++
		}
	}
	return count
}
