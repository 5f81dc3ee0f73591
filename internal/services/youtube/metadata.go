package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/denisAlshanov/yttools/internal/utils"
)

// MetadataService looks up video metadata through the oEmbed endpoint.
type MetadataService struct {
	httpClient *http.Client
	oembedURL  string
	watchURL   string
}

func NewMetadataService(httpClient *http.Client, oembedURL, watchURL string) *MetadataService {
	return &MetadataService{
		httpClient: httpClient,
		oembedURL:  oembedURL,
		watchURL:   watchURL,
	}
}

// GetVideoData performs a single oEmbed request for the video behind videoURL.
// Failures of the request or of decoding are reported as provider errors.
func (s *MetadataService) GetVideoData(ctx context.Context, videoURL string) (*Metadata, error) {
	videoID, err := videoIDFromURL(videoURL)
	if err != nil {
		return nil, err
	}

	metadata, err := s.fetchOEmbed(ctx, videoID)
	if err != nil {
		utils.LogWarn(ctx, "oEmbed lookup failed", utils.Fields{
			"video_id": videoID,
			"error":    err.Error(),
		})
		return nil, newProviderError(stageVideoData, err)
	}

	utils.LogDebug(ctx, "oEmbed lookup succeeded", utils.Fields{"video_id": videoID})
	return metadata, nil
}

// OEmbedURL builds the oEmbed request URL for a video ID.
func (s *MetadataService) OEmbedURL(videoID string) string {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("url", s.watchURL+"?v="+videoID)
	return s.oembedURL + "?" + params.Encode()
}

func (s *MetadataService) fetchOEmbed(ctx context.Context, videoID string) (*Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.OEmbedURL(videoID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP Error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return projectMetadata(raw), nil
}

var metadataFields = []struct {
	key string
	set func(m *Metadata, value interface{})
}{
	{"title", func(m *Metadata, v interface{}) { m.Title = stringField(v) }},
	{"author_name", func(m *Metadata, v interface{}) { m.AuthorName = stringField(v) }},
	{"author_url", func(m *Metadata, v interface{}) { m.AuthorURL = stringField(v) }},
	{"type", func(m *Metadata, v interface{}) { m.Type = stringField(v) }},
	{"height", func(m *Metadata, v interface{}) { m.Height = intField(v) }},
	{"width", func(m *Metadata, v interface{}) { m.Width = intField(v) }},
	{"version", func(m *Metadata, v interface{}) { m.Version = stringField(v) }},
	{"provider_name", func(m *Metadata, v interface{}) { m.ProviderName = stringField(v) }},
	{"provider_url", func(m *Metadata, v interface{}) { m.ProviderURL = stringField(v) }},
	{"thumbnail_url", func(m *Metadata, v interface{}) { m.ThumbnailURL = stringField(v) }},
}

// projectMetadata copies the whitelisted keys; everything else is dropped.
func projectMetadata(raw map[string]interface{}) *Metadata {
	metadata := &Metadata{}
	for _, field := range metadataFields {
		if value, ok := raw[field.key]; ok {
			field.set(metadata, value)
		}
	}
	return metadata
}

func stringField(value interface{}) *string {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	return &s
}

func intField(value interface{}) *int {
	f, ok := value.(float64)
	if !ok {
		return nil
	}
	i := int(f)
	return &i
}
