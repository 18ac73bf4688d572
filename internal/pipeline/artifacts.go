package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// Artifact filenames follow the download convention collaborators expect.

// SummaryFilename returns the conventional summary artifact name for a video.
func SummaryFilename(videoID string) string {
	return fmt.Sprintf("summary_%s.txt", videoID)
}

// TranscriptFilename returns the conventional transcript artifact name.
func TranscriptFilename(videoID string) string {
	return fmt.Sprintf("transcript_%s.txt", videoID)
}

// WriteArtifacts writes the summary and transcript as plain-text files into
// dir, creating it if needed. Returns the two paths written.
func WriteArtifacts(dir string, outcome *Outcome) (summaryPath, transcriptPath string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create output dir: %w", err)
	}

	summaryPath = filepath.Join(dir, SummaryFilename(outcome.VideoID))
	if err := os.WriteFile(summaryPath, []byte(outcome.Summary), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write summary: %w", err)
	}

	transcriptPath = filepath.Join(dir, TranscriptFilename(outcome.VideoID))
	if err := os.WriteFile(transcriptPath, []byte(outcome.Transcript.FullText), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write transcript: %w", err)
	}

	return summaryPath, transcriptPath, nil
}
