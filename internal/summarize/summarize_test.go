package summarize

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator records what it was invoked with and returns canned output.
type fakeGenerator struct {
	gotText      string
	gotMaxLength int
	gotMinLength int
	out          string
	err          error
}

func (g *fakeGenerator) Summarize(_ context.Context, text string, maxLength, minLength int) (string, error) {
	g.gotText = text
	g.gotMaxLength = maxLength
	g.gotMinLength = minLength
	return g.out, g.err
}

func TestSummarize_ShortInputPassedUnmodified(t *testing.T) {
	gen := &fakeGenerator{out: "a concise summary"}
	s := New(gen, DefaultOptions())

	text := strings.Repeat("a", 1000)
	summary, degraded := s.Summarize(context.Background(), text)

	assert.Equal(t, "a concise summary", summary)
	assert.False(t, degraded)
	assert.Equal(t, text, gen.gotText, "input at the ceiling must not be truncated")
}

func TestSummarize_LongInputTruncatedWithMarker(t *testing.T) {
	gen := &fakeGenerator{out: "a concise summary"}
	s := New(gen, DefaultOptions())

	text := strings.Repeat("b", 2500)
	_, degraded := s.Summarize(context.Background(), text)

	assert.False(t, degraded)
	assert.Equal(t, text[:1000]+"...", gen.gotText)
}

func TestSummarize_BoundsForwarded(t *testing.T) {
	gen := &fakeGenerator{out: "ok"}
	s := New(gen, Options{MaxLength: 80, MinLength: 10})

	s.Summarize(context.Background(), "some transcript text")

	assert.Equal(t, 80, gen.gotMaxLength)
	assert.Equal(t, 10, gen.gotMinLength)
}

func TestSummarize_DefaultBounds(t *testing.T) {
	gen := &fakeGenerator{out: "ok"}
	s := New(gen, Options{})

	s.Summarize(context.Background(), "text")

	assert.Equal(t, DefaultMaxLength, gen.gotMaxLength)
	assert.Equal(t, DefaultMinLength, gen.gotMinLength)
}

func TestSummarize_FallbackEmbedsOriginalText(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model overloaded")}
	s := New(gen, DefaultOptions())

	// 2000 chars, distinct prefix so we can assert the untruncated original
	// (not the 1000-char truncation) feeds the fallback.
	text := "PREFIX" + strings.Repeat("c", 1994)
	summary, degraded := s.Summarize(context.Background(), text)

	assert.True(t, degraded)
	assert.Contains(t, summary, "Summary generation failed: model overloaded")
	assert.Contains(t, summary, text[:500]+"...")
}

func TestSummarize_FallbackShortInput(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}
	s := New(gen, DefaultOptions())

	summary, degraded := s.Summarize(context.Background(), "tiny transcript")

	require.True(t, degraded)
	assert.Contains(t, summary, "tiny transcript...")
}

func TestSummarize_SuccessReturnedVerbatim(t *testing.T) {
	gen := &fakeGenerator{out: "  exactly this  "}
	s := New(gen, DefaultOptions())

	summary, degraded := s.Summarize(context.Background(), "text")

	assert.False(t, degraded)
	assert.Equal(t, "  exactly this  ", summary, "capability output is not reshaped")
}
