// Package summarize reduces transcript text to a bounded-length summary,
// degrading to a fallback excerpt when the summarization capability fails.
package summarize

import (
	"context"
	"fmt"
)

const (
	// DefaultMaxLength is the default upper summary bound, in the
	// capability's native unit (words/tokens, not characters).
	DefaultMaxLength = 150
	// DefaultMinLength is the default lower summary bound.
	DefaultMinLength = 30

	// truncateAt is the input ceiling: downstream models either fail or
	// silently truncate longer inputs, so truncation is made explicit here.
	truncateAt = 1000
	// fallbackPreview is how much of the original transcript the fallback
	// output embeds.
	fallbackPreview = 500

	// continuationMarker is appended wherever text has been cut.
	continuationMarker = "..."
)

// Generator is the external summarization capability. Implementations must
// request deterministic (non-sampled) output.
type Generator interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// Options holds the summary length bounds, in the capability's native unit.
type Options struct {
	MaxLength int
	MinLength int
}

// DefaultOptions returns the documented default bounds.
func DefaultOptions() Options {
	return Options{MaxLength: DefaultMaxLength, MinLength: DefaultMinLength}
}

// Summarizer produces summaries via an injected Generator.
type Summarizer struct {
	gen  Generator
	opts Options
}

// New creates a Summarizer. Zero-valued bounds fall back to the defaults.
func New(gen Generator, opts Options) *Summarizer {
	if opts.MaxLength <= 0 {
		opts.MaxLength = DefaultMaxLength
	}
	if opts.MinLength <= 0 {
		opts.MinLength = DefaultMinLength
	}
	return &Summarizer{gen: gen, opts: opts}
}

// Summarize produces a summary of text. Inputs over 1000 characters are
// truncated to the first 1000 characters plus a continuation marker before
// being handed to the capability. On success the capability's output is
// returned verbatim with degraded=false. On any failure the result is a
// fallback string embedding the failure reason and the first 500 characters
// of the original, untruncated text, with degraded=true. Summarization never
// fails the pipeline once a transcript exists.
func (s *Summarizer) Summarize(ctx context.Context, text string) (summary string, degraded bool) {
	input := text
	if len(input) > truncateAt {
		input = input[:truncateAt] + continuationMarker
	}

	out, err := s.gen.Summarize(ctx, input, s.opts.MaxLength, s.opts.MinLength)
	if err != nil {
		return fallback(text, err), true
	}
	return out, false
}

// fallback builds the degraded output from the original untruncated text.
func fallback(text string, cause error) string {
	preview := text
	if len(preview) > fallbackPreview {
		preview = preview[:fallbackPreview]
	}
	return fmt.Sprintf("Summary generation failed: %v. Here are the first %d characters: %s%s",
		cause, fallbackPreview, preview, continuationMarker)
}
