package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/oriscan/oriscan-go/pkg/oriscan"
)

// ScanRequest represents an origin scan request.
type ScanRequest struct {
	Sequence      string `json:"sequence"`
	WindowLength  int    `json:"window_length"`
	K             int    `json:"k"`
	MaxMismatches int    `json:"max_mismatches"`
}

// ScanReport represents one scanned skew minimum.
type ScanReport struct {
	Position int      `json:"position"`
	Window   string   `json:"window"`
	TopCount int      `json:"top_count"`
	TopKmers []string `json:"top_kmers"`
}

// ScanResponse represents the response for an origin scan.
type ScanResponse struct {
	Reports []ScanReport `json:"reports"`
}

// ScanHandler handles full origin scan requests.
func ScanHandler(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq, err := oriscan.NewSequence(req.Sequence)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	reports, err := oriscan.Scan(seq, oriscan.Params{
		WindowLength:  req.WindowLength,
		K:             req.K,
		MaxMismatches: req.MaxMismatches,
	})
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	out := make([]ScanReport, len(reports))
	for i, rep := range reports {
		out[i] = ScanReport{
			Position: rep.Position,
			Window:   rep.Window,
			TopCount: rep.Motifs.TopCount,
			TopKmers: rep.Motifs.TopKmers,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScanResponse{Reports: out})
}
