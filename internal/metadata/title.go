// Package metadata provides best-effort video metadata lookups. Failures here
// are cosmetic and must never abort the pipeline.
package metadata

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/video-summarizer/internal/fetch"
)

// UnknownTitle is the sentinel returned when the title cannot be determined.
const UnknownTitle = "Unknown Title"

// watchURLPrefix is where video watch pages live.
const watchURLPrefix = "https://www.youtube.com/watch?v="

// Lookup resolves display metadata for a video.
type Lookup struct {
	baseURL string
	opts    *fetch.Options
}

// LookupOption customizes a Lookup.
type LookupOption func(*Lookup)

// WithBaseURL overrides the watch page URL prefix (used in tests).
func WithBaseURL(base string) LookupOption {
	return func(l *Lookup) { l.baseURL = base }
}

// WithFetchOptions sets the fetch options for watch page requests.
func WithFetchOptions(opts *fetch.Options) LookupOption {
	return func(l *Lookup) { l.opts = opts }
}

// NewLookup creates a Lookup with production defaults.
func NewLookup(opts ...LookupOption) *Lookup {
	l := &Lookup{baseURL: watchURLPrefix}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Title fetches the watch page for videoID and extracts the page title,
// stripping the trailing " - YouTube" suffix. Any failure (network, parse,
// missing element) yields UnknownTitle.
func (l *Lookup) Title(ctx context.Context, videoID string) string {
	result, err := fetch.URL(ctx, l.baseURL+videoID, l.opts)
	if err != nil {
		return UnknownTitle
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	if err != nil {
		return UnknownTitle
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return UnknownTitle
	}
	return strings.TrimSuffix(title, " - YouTube")
}
