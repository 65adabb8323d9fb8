package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/oriscan/oriscan-go/pkg/oriscan"
)

// MotifRequest represents a most-frequent-kmer search request.
type MotifRequest struct {
	Window        string `json:"window"`
	K             int    `json:"k"`
	MaxMismatches int    `json:"max_mismatches"`
}

// MotifResponse represents the response for a motif search.
type MotifResponse struct {
	TopCount int      `json:"top_count"`
	TopKmers []string `json:"top_kmers"`
}

// FindMotifsHandler handles most-frequent-kmer search requests.
func FindMotifsHandler(w http.ResponseWriter, r *http.Request) {
	var req MotifRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	result, err := oriscan.FindMostFrequentKmers(req.Window, req.K, req.MaxMismatches)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MotifResponse{
		TopCount: result.TopCount,
		TopKmers: result.TopKmers,
	})
}
