package youtube

import (
	"context"
	"fmt"
	"strings"

	"github.com/denisAlshanov/yttools/internal/utils"
)

// NoCaptionsFound is returned as caption text when the provider has no lines.
const NoCaptionsFound = "No captions found for video"

// CaptionService reshapes provider transcripts into plain text or timestamps.
type CaptionService struct {
	provider           TranscriptProvider
	timestampLanguages []string
}

// NewCaptionService creates a caption service. timestampLanguages is used by
// GetVideoTimestamps when the caller has no language preference.
func NewCaptionService(provider TranscriptProvider, timestampLanguages []string) *CaptionService {
	return &CaptionService{
		provider:           provider,
		timestampLanguages: timestampLanguages,
	}
}

// GetVideoCaptions joins the caption text of the video with single spaces.
// Without languages the provider picks its own default.
func (s *CaptionService) GetVideoCaptions(ctx context.Context, videoURL string, languages []string) (string, error) {
	videoID, err := videoIDFromURL(videoURL)
	if err != nil {
		return "", err
	}

	if len(languages) == 0 {
		languages = nil
	}

	lines, err := s.fetch(ctx, videoID, languages)
	if err != nil {
		return "", newProviderError(stageCaptions, err)
	}

	if len(lines) == 0 {
		return NoCaptionsFound, nil
	}

	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text
	}
	return strings.Join(texts, " "), nil
}

// GetVideoTimestamps formats every caption line as "M:SS - text", keeping
// provider order. Without languages the configured default list is used.
func (s *CaptionService) GetVideoTimestamps(ctx context.Context, videoURL string, languages []string) ([]string, error) {
	videoID, err := videoIDFromURL(videoURL)
	if err != nil {
		return nil, err
	}

	if len(languages) == 0 {
		languages = s.timestampLanguages
	}

	lines, err := s.fetch(ctx, videoID, languages)
	if err != nil {
		return nil, newProviderError(stageTimestamps, err)
	}

	timestamps := make([]string, 0, len(lines))
	for _, line := range lines {
		timestamps = append(timestamps, FormatTimestamp(line))
	}
	return timestamps, nil
}

func (s *CaptionService) fetch(ctx context.Context, videoID string, languages []string) ([]CaptionLine, error) {
	lines, err := s.provider.FetchTranscript(ctx, videoID, languages)
	if err != nil {
		utils.LogWarn(ctx, "Transcript fetch failed", utils.Fields{
			"video_id":  videoID,
			"languages": languages,
			"error":     err.Error(),
		})
		return nil, err
	}

	utils.LogDebug(ctx, "Transcript fetched", utils.Fields{
		"video_id": videoID,
		"lines":    len(lines),
	})
	return lines, nil
}

// FormatTimestamp renders a caption line with its start truncated to whole
// seconds, e.g. 75.8s "hello" becomes "1:15 - hello".
func FormatTimestamp(line CaptionLine) string {
	start := int(line.Start)
	minutes, seconds := start/60, start%60
	if seconds < 0 {
		// floor division for negative offsets
		minutes--
		seconds += 60
	}
	return fmt.Sprintf("%d:%02d - %s", minutes, seconds, line.Text)
}
