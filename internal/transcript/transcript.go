package transcript

import (
	"context"
	"strings"
)

// Segment is a single caption segment as returned by a retrieval capability.
type Segment struct {
	Text string
}

// Document is a full transcript assembled from caption segments.
// It is immutable after creation and lives for a single pipeline run.
type Document struct {
	FullText     string
	SegmentCount int
}

// Fetcher retrieves the caption segments for a video. Implementations are
// external capabilities (Innertube, a remote API) injected into the pipeline.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) ([]Segment, error)
}

// BuildDocument joins segments with single spaces, preserving source order.
// SegmentCount is the number of segments as returned by the capability, not a
// recount of the resulting words.
func BuildDocument(segments []Segment) *Document {
	var sb strings.Builder
	for _, seg := range segments {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(seg.Text)
	}
	return &Document{
		FullText:     sb.String(),
		SegmentCount: len(segments),
	}
}

// Acquire fetches the transcript for a video and assembles it into a Document.
// A single failed attempt yields an UnavailableError; there is no retry.
// Callers needing resilience must wrap this themselves.
func Acquire(ctx context.Context, f Fetcher, videoID string) (*Document, error) {
	segments, err := f.Fetch(ctx, videoID)
	if err != nil {
		return nil, &UnavailableError{VideoID: videoID, Cause: err}
	}
	return BuildDocument(segments), nil
}
