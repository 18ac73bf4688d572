package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/video-summarizer/internal/metadata"
	"github.com/jonathan/video-summarizer/internal/resolve"
	"github.com/jonathan/video-summarizer/internal/summarize"
	"github.com/jonathan/video-summarizer/internal/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	segments []transcript.Segment
	err      error
	calls    int
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) ([]transcript.Segment, error) {
	f.calls++
	return f.segments, f.err
}

type fakeGenerator struct {
	out   string
	err   error
	calls int
}

func (g *fakeGenerator) Summarize(_ context.Context, _ string, _, _ int) (string, error) {
	g.calls++
	return g.out, g.err
}

type fakeTitles struct{ title string }

func (f *fakeTitles) Title(_ context.Context, _ string) string { return f.title }

func happyDeps() (Deps, *fakeFetcher, *fakeGenerator) {
	fetcher := &fakeFetcher{segments: []transcript.Segment{{Text: "hello"}, {Text: "world"}}}
	generator := &fakeGenerator{out: "a summary"}
	return Deps{
		Fetcher:   fetcher,
		Generator: generator,
		Titles:    &fakeTitles{title: "Great Video"},
	}, fetcher, generator
}

func TestRun_EndToEnd(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ"},
		{"shorts URL", "https://www.youtube.com/shorts/dQw4w9WgXcQ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, _, _ := happyDeps()
			outcome, err := Run(context.Background(), RunOptions{URL: tt.url}, deps)
			require.NoError(t, err)

			assert.Equal(t, "dQw4w9WgXcQ", outcome.VideoID)
			assert.Equal(t, "Great Video", outcome.Title)
			assert.Equal(t, "hello world", outcome.Transcript.FullText)
			assert.Equal(t, 2, outcome.Transcript.SegmentCount)
			assert.Equal(t, "a summary", outcome.Summary)
			assert.False(t, outcome.Degraded)
		})
	}
}

func TestRun_BadURLHaltsBeforeAcquisition(t *testing.T) {
	deps, fetcher, generator := happyDeps()

	outcome, err := Run(context.Background(), RunOptions{URL: "https://example.com/video"}, deps)
	assert.ErrorIs(t, err, resolve.ErrNoVideoID)
	assert.Nil(t, outcome)
	assert.Zero(t, fetcher.calls, "no acquisition after resolution failure")
	assert.Zero(t, generator.calls)
}

func TestRun_UnavailableTranscriptHaltsBeforeSummarization(t *testing.T) {
	deps, fetcher, generator := happyDeps()
	fetcher.err = errors.New("no captions")

	outcome, err := Run(context.Background(), RunOptions{URL: "https://youtu.be/dQw4w9WgXcQ"}, deps)
	assert.Nil(t, outcome)

	var unavailable *transcript.UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Zero(t, generator.calls, "no summarization after acquisition failure")
}

func TestRun_SummarizerFailureDegrades(t *testing.T) {
	deps, fetcher, generator := happyDeps()
	fetcher.segments = []transcript.Segment{{Text: strings.Repeat("x", 2000)}}
	generator.err = errors.New("model down")

	outcome, err := Run(context.Background(), RunOptions{URL: "https://youtu.be/dQw4w9WgXcQ"}, deps)
	require.NoError(t, err, "summarization failure must not halt the pipeline")

	assert.True(t, outcome.Degraded)
	assert.Contains(t, outcome.Summary, "Summary generation failed: model down")
	assert.Contains(t, outcome.Summary, strings.Repeat("x", 500)+"...")
}

func TestRun_NilTitleLookupUsesSentinel(t *testing.T) {
	deps, _, _ := happyDeps()
	deps.Titles = nil

	outcome, err := Run(context.Background(), RunOptions{URL: "https://youtu.be/dQw4w9WgXcQ"}, deps)
	require.NoError(t, err)
	assert.Equal(t, metadata.UnknownTitle, outcome.Title)
}

func TestRun_MissingDeps(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{URL: "https://youtu.be/dQw4w9WgXcQ"}, Deps{})
	assert.Error(t, err)
}

func TestRun_ProgressEvents(t *testing.T) {
	deps, _, _ := happyDeps()

	var steps []string
	opts := RunOptions{
		URL:        "https://youtu.be/dQw4w9WgXcQ",
		OnProgress: func(e ProgressEvent) { steps = append(steps, e.Step) },
	}

	_, err := Run(context.Background(), opts, deps)
	require.NoError(t, err)
	assert.Equal(t, []string{"resolve", "transcript", "summarize"}, steps)
}

func TestRun_BoundsForwarded(t *testing.T) {
	fetcher := &fakeFetcher{segments: []transcript.Segment{{Text: "hi"}}}
	var gotMax, gotMin int
	gen := generatorFunc(func(_ context.Context, _ string, maxLen, minLen int) (string, error) {
		gotMax, gotMin = maxLen, minLen
		return "ok", nil
	})

	_, err := Run(context.Background(),
		RunOptions{URL: "https://youtu.be/dQw4w9WgXcQ", MaxLength: 99, MinLength: 11},
		Deps{Fetcher: fetcher, Generator: gen})
	require.NoError(t, err)
	assert.Equal(t, 99, gotMax)
	assert.Equal(t, 11, gotMin)
}

func TestRun_DefaultBounds(t *testing.T) {
	fetcher := &fakeFetcher{segments: []transcript.Segment{{Text: "hi"}}}
	var gotMax, gotMin int
	gen := generatorFunc(func(_ context.Context, _ string, maxLen, minLen int) (string, error) {
		gotMax, gotMin = maxLen, minLen
		return "ok", nil
	})

	_, err := Run(context.Background(),
		RunOptions{URL: "https://youtu.be/dQw4w9WgXcQ"},
		Deps{Fetcher: fetcher, Generator: gen})
	require.NoError(t, err)
	assert.Equal(t, summarize.DefaultMaxLength, gotMax)
	assert.Equal(t, summarize.DefaultMinLength, gotMin)
}

// generatorFunc adapts a function to the summarize.Generator interface.
type generatorFunc func(ctx context.Context, text string, maxLength, minLength int) (string, error)

func (f generatorFunc) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	return f(ctx, text, maxLength, minLength)
}

func TestArtifactFilenames(t *testing.T) {
	assert.Equal(t, "summary_dQw4w9WgXcQ.txt", SummaryFilename("dQw4w9WgXcQ"))
	assert.Equal(t, "transcript_dQw4w9WgXcQ.txt", TranscriptFilename("dQw4w9WgXcQ"))
}

func TestWriteArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	outcome := &Outcome{
		VideoID:    "dQw4w9WgXcQ",
		Summary:    "the summary",
		Transcript: &transcript.Document{FullText: "the transcript", SegmentCount: 1},
	}

	summaryPath, transcriptPath, err := WriteArtifacts(dir, outcome)
	require.NoError(t, err)

	summaryBytes, err := os.ReadFile(summaryPath)
	require.NoError(t, err)
	assert.Equal(t, "the summary", string(summaryBytes))

	transcriptBytes, err := os.ReadFile(transcriptPath)
	require.NoError(t, err)
	assert.Equal(t, "the transcript", string(transcriptBytes))
}
