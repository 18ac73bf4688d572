package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/video-summarizer/internal/pipeline"
	"github.com/jonathan/video-summarizer/internal/types"
)

// errorResponse is the JSON error body
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

// handleHealth responds to health checks
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSummarize runs the full pipeline for one video URL.
func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	var req types.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body", RequestID: requestID})
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), RequestID: requestID})
		return
	}

	opts := pipeline.RunOptions{
		URL:       req.URL,
		MaxLength: req.MaxLength,
		MinLength: req.MinLength,
	}

	outcome, err := pipeline.Run(r.Context(), opts, s.deps)
	if err != nil {
		log.Printf("[%s] pipeline failed: %v", requestID, err)
		writeJSON(w, HTTPStatus(err), errorResponse{Error: userMessage(err), RequestID: requestID})
		return
	}

	writeJSON(w, http.StatusOK, types.SummarizeResponse{
		RequestID:    requestID,
		VideoID:      outcome.VideoID,
		Title:        outcome.Title,
		SegmentCount: outcome.Transcript.SegmentCount,
		Transcript:   outcome.Transcript.FullText,
		Summary:      outcome.Summary,
		Degraded:     outcome.Degraded,
	})
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
