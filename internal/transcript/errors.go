// Package transcript acquires full caption transcripts for YouTube videos.
package transcript

import "fmt"

// UnavailableError indicates that no transcript could be retrieved for a video.
// All acquisition failures (missing captions, network errors, malformed
// responses) collapse to this single error kind.
type UnavailableError struct {
	VideoID string
	Cause   error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transcript unavailable for %s: %v", e.VideoID, e.Cause)
	}
	return fmt.Sprintf("transcript unavailable for %s", e.VideoID)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
