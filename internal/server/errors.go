package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/video-summarizer/internal/resolve"
	"github.com/jonathan/video-summarizer/internal/transcript"
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline error.
func HTTPStatus(err error) int {
	var unavailable *transcript.UnavailableError
	switch {
	case errors.Is(err, resolve.ErrNoVideoID):
		return http.StatusBadRequest
	case errors.As(err, &unavailable):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// userMessage maps a pipeline error to the human-readable message exposed to
// clients. Internal failure detail stays out of responses.
func userMessage(err error) string {
	var unavailable *transcript.UnavailableError
	switch {
	case errors.Is(err, resolve.ErrNoVideoID):
		return "Invalid YouTube URL. Please check the link and try again."
	case errors.As(err, &unavailable):
		return "Could not retrieve transcript. This video might not have captions available."
	default:
		return "Internal error."
	}
}
