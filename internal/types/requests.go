// Package types provides type definitions for structured data shared between
// the HTTP API and its clients.
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SummarizeRequest represents the request to summarize a single video.
// Bounds are in the summarization capability's native unit (words/tokens);
// zero values fall back to the documented defaults.
type SummarizeRequest struct {
	URL       string `json:"url" validate:"required,min=1"`
	MaxLength int    `json:"max_length,omitempty" validate:"omitempty,gt=0"`
	MinLength int    `json:"min_length,omitempty" validate:"omitempty,gt=0"`
}

// SummarizeResponse represents the summarization result for a video.
type SummarizeResponse struct {
	RequestID    string `json:"request_id"`
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	SegmentCount int    `json:"segment_count"`
	Transcript   string `json:"transcript"`
	Summary      string `json:"summary"`
	Degraded     bool   `json:"degraded"`
}

// Validate validates the SummarizeRequest using the validator.
func (r *SummarizeRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.MaxLength > 0 && r.MinLength > r.MaxLength {
		return fmt.Errorf("min_length must not exceed max_length")
	}
	return nil
}
