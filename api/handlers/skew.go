package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/oriscan/oriscan-go/pkg/oriscan"
)

// SkewCurveResponse represents the response for a skew curve.
type SkewCurveResponse struct {
	Curve   []int `json:"curve"`
	Minimum int   `json:"minimum"`
}

// SkewCurveHandler handles skew curve requests.
func SkewCurveHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq, err := oriscan.NewSequence(req.Sequence)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	curve, err := oriscan.ComputeSkew(seq)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SkewCurveResponse{
		Curve:   curve,
		Minimum: curve.Min(),
	})
}

// SkewMinimaRequest represents a skew minima request.
type SkewMinimaRequest struct {
	Sequence string `json:"sequence"`
	All      bool   `json:"all,omitempty"` // report every global minimum, not just C-reaching ones
}

// SkewMinimaResponse represents the response for skew minima.
type SkewMinimaResponse struct {
	Minimum   int   `json:"minimum"`
	Positions []int `json:"positions"`
}

// SkewMinimaHandler handles skew minima requests.
func SkewMinimaHandler(w http.ResponseWriter, r *http.Request) {
	var req SkewMinimaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq, err := oriscan.NewSequence(req.Sequence)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	curve, err := oriscan.ComputeSkew(seq)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	var positions []int
	if req.All {
		positions = oriscan.AllSkewMinima(curve)
	} else {
		positions = oriscan.SkewMinima(seq, curve)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SkewMinimaResponse{
		Minimum:   curve.Min(),
		Positions: positions,
	})
}
