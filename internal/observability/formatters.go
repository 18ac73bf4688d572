// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/video-summarizer/internal/pipeline"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintVideoInfo outputs the resolved video identifier and display title.
func (p *Printer) PrintVideoInfo(videoID, title string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", title))
	sb.WriteString(fmt.Sprintf("Video ID: %s", videoID))
	p.printBox("Video Information", sb.String())
}

// PrintTranscriptMetrics outputs segment and character counts for a transcript.
func (p *Printer) PrintTranscriptMetrics(outcome *pipeline.Outcome) {
	if outcome == nil || outcome.Transcript == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Segments:   %d\n", outcome.Transcript.SegmentCount))
	sb.WriteString(fmt.Sprintf("Characters: %d", len(outcome.Transcript.FullText)))
	p.printBox("Transcript", sb.String())
}

// PrintSummary outputs the summary, flagging degraded fallback output.
func (p *Printer) PrintSummary(outcome *pipeline.Outcome) {
	if outcome == nil {
		return
	}
	title := "Summary"
	if outcome.Degraded {
		title = "Summary (degraded - showing transcript excerpt)"
	}
	p.printBox(title, wrap(outcome.Summary, boxWidth-4))
}

// wrap breaks text into lines no longer than width, splitting on spaces.
func wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				sb.WriteByte('\n')
				lineLen = 0
			} else {
				sb.WriteByte(' ')
				lineLen++
			}
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
