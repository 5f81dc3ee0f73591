package youtube

import (
	"net/http"

	"github.com/denisAlshanov/yttools/internal/config"
)

// Client bundles the metadata and caption services behind Tools.
type Client struct {
	*MetadataService
	*CaptionService
}

var _ Tools = (*Client)(nil)

// NewClient creates a YouTube client. Requests use the transport defaults,
// bounded only by the caller's context.
func NewClient(cfg *config.YouTubeConfig) *Client {
	httpClient := &http.Client{}

	return &Client{
		MetadataService: NewMetadataService(httpClient, cfg.OEmbedURL, cfg.WatchURL),
		CaptionService:  NewCaptionService(NewTranscriptClient(httpClient), cfg.TimestampLanguages),
	}
}
