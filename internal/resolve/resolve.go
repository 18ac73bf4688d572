// Package resolve extracts canonical video identifiers from YouTube URLs.
package resolve

import (
	"fmt"
	"regexp"
)

// ErrNoVideoID is returned when no video identifier can be extracted from a URL.
var ErrNoVideoID = fmt.Errorf("no video ID found in URL")

// Video identifiers are exactly 11 characters from [A-Za-z0-9_-].
// Patterns are checked in order; the first match wins.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11}).*`),
	regexp.MustCompile(`(?:embed/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`(?:shorts/)([0-9A-Za-z_-]{11})`),
}

// Extract returns the 11-character video identifier embedded in rawURL.
// It recognizes watch URLs (?v=), short links (youtu.be/), embed URLs and
// Shorts URLs. Returns ErrNoVideoID if no identifier is present; it never
// returns a partial or malformed identifier.
func Extract(rawURL string) (string, error) {
	for _, pattern := range idPatterns {
		if m := pattern.FindStringSubmatch(rawURL); len(m) >= 2 {
			return m[1], nil
		}
	}
	return "", ErrNoVideoID
}
