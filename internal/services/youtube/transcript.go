package youtube

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/kkdai/youtube/v2"
)

// TranscriptClient implements TranscriptProvider on top of kkdai/youtube.
type TranscriptClient struct {
	client *youtube.Client
}

func NewTranscriptClient(httpClient *http.Client) *TranscriptClient {
	return &TranscriptClient{
		client: &youtube.Client{
			HTTPClient: httpClient,
		},
	}
}

// FetchTranscript returns the first transcript that loads, trying languages
// in order. With no languages the library default language is requested.
func (c *TranscriptClient) FetchTranscript(ctx context.Context, videoID string, languages []string) ([]CaptionLine, error) {
	video := &youtube.Video{ID: videoID}

	if len(languages) == 0 {
		transcript, err := c.client.GetTranscriptCtx(ctx, video, "")
		if err != nil {
			return nil, fmt.Errorf("failed to get transcript: %w", err)
		}
		return captionLines(transcript), nil
	}

	var lastErr error
	for _, lang := range languages {
		transcript, err := c.client.GetTranscriptCtx(ctx, video, lang)
		if err == nil {
			return captionLines(transcript), nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		lastErr = err
	}

	return nil, fmt.Errorf("no transcript found for any of the requested languages [%s]: %w",
		strings.Join(languages, ", "), lastErr)
}

func captionLines(transcript youtube.VideoTranscript) []CaptionLine {
	lines := make([]CaptionLine, 0, len(transcript))
	for _, segment := range transcript {
		lines = append(lines, CaptionLine{
			Start: float64(segment.StartMs) / 1000,
			Text:  segment.Text,
		})
	}
	return lines
}
