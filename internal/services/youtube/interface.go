package youtube

import (
	"context"
)

// Tools is the set of video lookups exposed to the API layer.
type Tools interface {
	// GetVideoData returns the oEmbed metadata of the video behind url
	GetVideoData(ctx context.Context, url string) (*Metadata, error)

	// GetVideoCaptions returns all caption text of the video joined by spaces
	GetVideoCaptions(ctx context.Context, url string, languages []string) (string, error)

	// GetVideoTimestamps returns one "M:SS - text" entry per caption line
	GetVideoTimestamps(ctx context.Context, url string, languages []string) ([]string, error)
}

// TranscriptProvider loads the caption lines of a video. Languages are tried
// in priority order; an empty list leaves the choice to the provider.
type TranscriptProvider interface {
	FetchTranscript(ctx context.Context, videoID string, languages []string) ([]CaptionLine, error)
}

// CaptionLine is one timed caption fragment.
type CaptionLine struct {
	Start float64 // seconds from the start of the video
	Text  string
}

// Metadata is the whitelisted projection of an oEmbed response. Fields the
// provider did not send are nil and render as JSON null.
type Metadata struct {
	Title        *string `json:"title"`
	AuthorName   *string `json:"author_name"`
	AuthorURL    *string `json:"author_url"`
	Type         *string `json:"type"`
	Height       *int    `json:"height"`
	Width        *int    `json:"width"`
	Version      *string `json:"version"`
	ProviderName *string `json:"provider_name"`
	ProviderURL  *string `json:"provider_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
}
