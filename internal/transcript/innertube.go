package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"
)

// InnertubeFetcher retrieves caption transcripts through YouTube's Innertube
// /player endpoint: resolve caption tracks for a video, pick the best usable
// track, then download and parse its timedtext XML.
type InnertubeFetcher struct {
	client    *http.Client
	playerURL string
	languages []string
	userAgent string
}

const (
	defaultPlayerURL = "https://www.youtube.com/youtubei/v1/player"
	androidVersion   = "20.10.38"
	androidUserAgent = "com.google.android.youtube/" + androidVersion + " (Linux; U; Android 11) gzip"

	// maxCaptionBody bounds timedtext downloads; caption XML is small.
	maxCaptionBody = 512 * 1024
	// maxPlayerBody bounds /player responses.
	maxPlayerBody = 3 * 1024 * 1024
)

// FetcherOption customizes an InnertubeFetcher.
type FetcherOption func(*InnertubeFetcher)

// WithHTTPClient sets the HTTP client used for all requests.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *InnertubeFetcher) { f.client = client }
}

// WithPlayerURL overrides the Innertube /player endpoint (used in tests).
func WithPlayerURL(url string) FetcherOption {
	return func(f *InnertubeFetcher) { f.playerURL = url }
}

// WithLanguages sets the preferred caption languages, most preferred first.
func WithLanguages(langs ...string) FetcherOption {
	return func(f *InnertubeFetcher) { f.languages = langs }
}

// NewInnertubeFetcher creates a fetcher with sensible defaults: a 30-second
// HTTP timeout and English captions preferred.
func NewInnertubeFetcher(opts ...FetcherOption) *InnertubeFetcher {
	f := &InnertubeFetcher{
		client:    &http.Client{Timeout: 30 * time.Second},
		playerURL: defaultPlayerURL,
		languages: []string{"en"},
		userAgent: androidUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// --- Innertube request/response types (ANDROID client) ---

type playerRequest struct {
	VideoID        string        `json:"videoId"`
	Context        playerContext `json:"context"`
	RacyCheckOk    bool          `json:"racyCheckOk"`
	ContentCheckOk bool          `json:"contentCheckOk"`
}

type playerContext struct {
	Client playerClient `json:"client"`
}

type playerClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
	VisitorData       string `json:"visitorData,omitempty"`
}

type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

// --- Timedtext XML types ---

type timedText struct {
	Lines []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Text string `xml:",chardata"`
}

// Fetch retrieves the caption segments for videoID. One track fetch per call;
// any failure is returned as-is for the caller to collapse to an
// UnavailableError.
func (f *InnertubeFetcher) Fetch(ctx context.Context, videoID string) ([]Segment, error) {
	tracks, err := f.captionTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}
	track, ok := pickBestTrack(tracks, f.languages)
	if !ok {
		return nil, errors.New("no usable caption track")
	}
	return f.fetchTimedText(ctx, track.BaseURL)
}

// captionTracks calls the Innertube /player endpoint and returns the caption
// tracks advertised for the video.
func (f *InnertubeFetcher) captionTracks(ctx context.Context, videoID string) ([]captionTrack, error) {
	body, err := json.Marshal(playerRequest{
		VideoID: videoID,
		Context: playerContext{
			Client: playerClient{
				ClientName:        "ANDROID",
				ClientVersion:     androidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
				VisitorData:       visitorData(),
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.playerURL+"?prettyPrint=false", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", androidVersion)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("innertube player: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("innertube player: HTTP %d", resp.StatusCode)
	}

	var player playerResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPlayerBody)).Decode(&player); err != nil {
		return nil, fmt.Errorf("decode player response: %w", err)
	}
	if player.Captions == nil {
		if player.PlayabilityStatus != nil && player.PlayabilityStatus.Reason != "" {
			return nil, fmt.Errorf("captions unavailable: %s", player.PlayabilityStatus.Reason)
		}
		return nil, errors.New("no captions in player response")
	}
	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, errors.New("no caption tracks")
	}
	return tracks, nil
}

// needsPoToken reports whether a caption track URL requires a PoToken.
// Tracks tagged &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickBestTrack selects the best usable caption track for the language
// preferences: manual track in a preferred language, then auto-generated in a
// preferred language, then any English track, then anything usable.
func pickBestTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}

// fetchTimedText downloads and parses a timedtext XML caption URL, returning
// one Segment per caption line.
func (f *InnertubeFetcher) fetchTimedText(ctx context.Context, baseURL string) ([]Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch timedtext: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCaptionBody))
	if err != nil {
		return nil, err
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	segments := make([]Segment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		// Caption text is often double-escaped (&amp;#39;).
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text != "" {
			segments = append(segments, Segment{Text: text})
		}
	}
	return segments, nil
}

// visitorData creates a random 11-char visitor ID for Innertube requests.
// Non-cryptographic; YouTube only expects the shape to look plausible.
func visitorData() string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	b := make([]byte, 11)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}
