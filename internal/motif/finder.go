package motif

import (
	"runtime"
	"sort"
	"strings"

	"github.com/oriscan/oriscan-go/internal/sequence"
)

// Result holds the outcome of a most-frequent-kmer search: the maximum hit
// count observed and every k-mer that achieved it. Ties are all reported;
// TopKmers is sorted so equal searches produce identical results regardless
// of map iteration order.
type Result struct {
	TopCount int
	TopKmers []string
}

// FindMostFrequentKmers finds the k-mers that occur most frequently in
// window, counting approximate occurrences (up to maxMismatches
// substitutions) of both the k-mer and its reverse complement.
//
// Candidates are drawn from the Hamming neighborhoods of every length-k
// substring of the window, which over-approximates any sequence that could be
// the true consensus. A window shorter than k has no substrings and yields an
// empty result rather than an error: boundary truncation legitimately
// produces such windows.
func FindMostFrequentKmers(window string, k, maxMismatches int) (*Result, error) {
	if k <= 0 {
		return nil, &InvalidParameterError{Name: "k", Value: k}
	}
	if maxMismatches < 0 {
		return nil, &InvalidParameterError{Name: "maxMismatches", Value: maxMismatches}
	}

	window = strings.ToUpper(window)
	if err := sequence.Validate(window); err != nil {
		return nil, err
	}

	if len(window) < k {
		return &Result{TopKmers: []string{}}, nil
	}

	candidates := make(map[string]struct{})
	for i := 0; i+k <= len(window); i++ {
		for neighbor := range Neighborhood(window[i:i+k], maxMismatches) {
			candidates[neighbor] = struct{}{}
		}
	}

	hits, err := scoreCandidates(window, candidates, maxMismatches)
	if err != nil {
		return nil, err
	}

	topCount := 0
	for _, h := range hits {
		if h > topCount {
			topCount = h
		}
	}
	if topCount == 0 {
		return &Result{TopKmers: []string{}}, nil
	}

	topKmers := make([]string, 0)
	for c, h := range hits {
		if h == topCount {
			topKmers = append(topKmers, c)
		}
	}
	sort.Strings(topKmers)

	return &Result{TopCount: topCount, TopKmers: topKmers}, nil
}

// scoreCandidates computes the strand-symmetric hit count for every
// candidate. Candidates are partitioned across a bounded pool of workers;
// each worker fills a private map and the partials are merged after all
// workers finish. Scoring is independent per candidate, so no ordering or
// locking is needed beyond the merge.
func scoreCandidates(window string, candidates map[string]struct{}, maxMismatches int) (map[string]int, error) {
	list := make([]string, 0, len(candidates))
	for c := range candidates {
		list = append(list, c)
	}

	workers := runtime.NumCPU()
	if workers > len(list) {
		workers = len(list)
	}
	if workers < 1 {
		workers = 1
	}

	type partial struct {
		hits map[string]int
		err  error
	}

	results := make(chan partial, workers)
	chunk := (len(list) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if lo > len(list) {
			lo = len(list)
		}
		if hi > len(list) {
			hi = len(list)
		}

		go func(part []string) {
			hits := make(map[string]int, len(part))
			for _, c := range part {
				rc, err := sequence.ReverseComplement(c)
				if err != nil {
					results <- partial{err: err}
					return
				}
				hits[c] = CountApproxOccurrences(window, c, maxMismatches) +
					CountApproxOccurrences(window, rc, maxMismatches)
			}
			results <- partial{hits: hits}
		}(list[lo:hi])
	}

	merged := make(map[string]int, len(list))
	var firstErr error
	for w := 0; w < workers; w++ {
		p := <-results
		if p.err != nil {
			if firstErr == nil {
				firstErr = p.err
			}
			continue
		}
		for c, h := range p.hits {
			merged[c] = h
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return merged, nil
}
