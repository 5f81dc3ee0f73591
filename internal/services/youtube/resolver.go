package youtube

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/denisAlshanov/yttools/internal/utils"
)

// ResolveVideoID extracts the video ID from a youtu.be link or a youtube.com
// watch, embed or /v/ URL. The ID shape is not validated. Any other URL,
// including one that fails to parse, reports false.
func ResolveVideoID(rawURL string) (string, bool) {
	videoID, ok, err := parseVideoID(rawURL)
	if err != nil {
		return "", false
	}
	return videoID, ok
}

func parseVideoID(rawURL string) (string, bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false, fmt.Errorf("failed to parse URL: %w", err)
	}

	path := u.EscapedPath()

	var videoID string
	switch strings.ToLower(u.Hostname()) {
	case "youtu.be":
		videoID, _, _ = strings.Cut(strings.TrimPrefix(path, "/"), "/")
	case "youtube.com", "www.youtube.com":
		switch {
		case path == "/watch":
			videoID = firstNonEmpty(u.Query()["v"])
		case strings.HasPrefix(path, "/embed/"), strings.HasPrefix(path, "/v/"):
			videoID = strings.Split(path, "/")[2]
		}
	}

	return videoID, videoID != "", nil
}

// videoIDFromURL applies the URL preconditions shared by every Tools operation.
func videoIDFromURL(rawURL string) (string, error) {
	if rawURL == "" {
		return "", newInvalidInputError(msgNoURL)
	}

	// a parse failure and a URL without an id look the same to the caller
	videoID, ok, err := parseVideoID(rawURL)
	if err != nil || !ok {
		return "", newInvalidInputError(msgVideoIDFailed)
	}
	return videoID, nil
}

// blank query values are skipped, e.g. "v=&v=abc" yields "abc"
func firstNonEmpty(values []string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ParseLanguages turns a comma separated list such as "en, fa" into language
// codes. Blank entries are dropped and an all-blank input returns nil.
func ParseLanguages(input string) []string {
	return utils.SplitList(input)
}
