// Package pipeline provides the high-level orchestration for summarizing a
// video: resolve the identifier, acquire the transcript, then summarize.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/video-summarizer/internal/metadata"
	"github.com/jonathan/video-summarizer/internal/resolve"
	"github.com/jonathan/video-summarizer/internal/summarize"
	"github.com/jonathan/video-summarizer/internal/transcript"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	URL        string
	MaxLength  int
	MinLength  int
	Verbose    bool
	OnProgress ProgressCallback
}

// TitleLookup resolves a display title for a video. Best effort: it returns a
// sentinel rather than an error, and must never abort the pipeline.
type TitleLookup interface {
	Title(ctx context.Context, videoID string) string
}

// Deps are the external capabilities the pipeline composes. All are injected;
// the pipeline never hard-wires a concrete engine.
type Deps struct {
	Fetcher   transcript.Fetcher
	Generator summarize.Generator
	Titles    TitleLookup
}

// Outcome holds everything a collaborator needs to render or persist:
// the resolved identifier, the display title, the full transcript document,
// and the summary (with the degraded flag so collaborators can show a notice).
type Outcome struct {
	VideoID    string
	Title      string
	Transcript *transcript.Document
	Summary    string
	Degraded   bool
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Step: step, Message: message})
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] %s: %s", step, message)
	}
}

// Run executes the pipeline for a single URL. Resolution and acquisition fail
// closed: their typed errors halt the run before any later stage. The
// summarization stage fails open: a capability failure degrades to fallback
// text inside the Outcome rather than an error.
func Run(ctx context.Context, opts RunOptions, deps Deps) (*Outcome, error) {
	if deps.Fetcher == nil || deps.Generator == nil {
		return nil, fmt.Errorf("pipeline deps incomplete: fetcher and generator are required")
	}

	// Stage 1: resolve, before any network call.
	videoID, err := resolve.Extract(opts.URL)
	if err != nil {
		return nil, err
	}
	emitProgress(&opts, "resolve", "video ID "+videoID)

	// Stage 2: acquire the transcript; the title lookup rides alongside since
	// it is cosmetic and independent.
	outcome := &Outcome{VideoID: videoID, Title: metadata.UnknownTitle}

	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc, err := transcript.Acquire(groupCtx, deps.Fetcher, videoID)
		if err != nil {
			return err
		}
		outcome.Transcript = doc
		return nil
	})
	if deps.Titles != nil {
		g.Go(func() error {
			outcome.Title = deps.Titles.Title(groupCtx, videoID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	emitProgress(&opts, "transcript",
		fmt.Sprintf("%d segments, %d characters", outcome.Transcript.SegmentCount, len(outcome.Transcript.FullText)))

	// Stage 3: summarize, degrading on failure.
	s := summarize.New(deps.Generator, summarize.Options{
		MaxLength: opts.MaxLength,
		MinLength: opts.MinLength,
	})
	outcome.Summary, outcome.Degraded = s.Summarize(ctx, outcome.Transcript.FullText)
	if outcome.Degraded {
		emitProgress(&opts, "summarize", "capability failed, returning fallback excerpt")
	} else {
		emitProgress(&opts, "summarize", "summary generated")
	}

	return outcome, nil
}
