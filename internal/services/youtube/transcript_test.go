package youtube

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/kkdai/youtube/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisAlshanov/yttools/internal/config"
)

const testVideoID = "dQw4w9WgXcQ"

// innertubeTranscript is a get_transcript response as sent to the Android client.
const innertubeTranscript = `{"actions":[{"elementsCommand":{"transformEntityCommand":{"arguments":{
	"transformTranscriptSegmentListArguments":{"overwrite":{"initialSegments":[
		{"transcriptSegmentRenderer":{"startMs":"0","endMs":"1500",
			"snippet":{"elementsAttributedString":{"content":"salam"}},
			"startTimeText":{"elementsAttributedString":{"content":"0:00"}}}},
		{"transcriptSegmentRenderer":{"startMs":"75800","endMs":"77000",
			"snippet":{"elementsAttributedString":{"content":"donya"}},
			"startTimeText":{"elementsAttributedString":{"content":"1:15"}}}}
	]}}}}}}]}`

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// fakeInnertube serves transcripts per language and answers 400 for the rest.
type fakeInnertube struct {
	mu           sync.Mutex
	transcripts  map[string]string
	requested    []string
	onTranscript func()
}

func (f *fakeInnertube) httpClient() *http.Client {
	return &http.Client{Transport: roundTripFunc(f.roundTrip)}
}

func (f *fakeInnertube) roundTrip(r *http.Request) (*http.Response, error) {
	// visitor id lookup on the home page
	if r.URL.Path != "/youtubei/v1/get_transcript" {
		return textResponse(r, http.StatusOK, "<html></html>"), nil
	}

	var body struct {
		Params string `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, err
	}
	lang, err := transcriptLanguage(body.Params)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.requested = append(f.requested, lang)
	payload, ok := f.transcripts[lang]
	onTranscript := f.onTranscript
	f.mu.Unlock()

	if onTranscript != nil {
		onTranscript()
	}
	if !ok {
		return textResponse(r, http.StatusBadRequest, "{}"), nil
	}
	return textResponse(r, http.StatusOK, payload), nil
}

func (f *fakeInnertube) languages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requested...)
}

func textResponse(r *http.Request, status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    r,
	}
}

// transcriptLanguage unpacks the language code from get_transcript params.
func transcriptLanguage(params string) (string, error) {
	outer, err := base64.RawStdEncoding.DecodeString(params)
	if err != nil {
		return "", err
	}
	langParam := strings.TrimPrefix(string(outer), "\n\x0b"+testVideoID+"\x12\x12")
	langParam = strings.TrimSuffix(langParam, "\x18\x01")

	langParam, err = url.QueryUnescape(langParam)
	if err != nil {
		return "", err
	}
	inner, err := base64.StdEncoding.DecodeString(langParam)
	if err != nil {
		return "", err
	}
	lang := strings.TrimPrefix(string(inner), "\n\x03asr\x12\x02")
	return strings.TrimSuffix(lang, "\x1a\x00"), nil
}

func TestFetchTranscriptFallsBackToNextLanguage(t *testing.T) {
	fake := &fakeInnertube{transcripts: map[string]string{"en": innertubeTranscript}}
	provider := NewTranscriptClient(fake.httpClient())

	lines, err := provider.FetchTranscript(context.Background(), testVideoID, []string{"fa", "en"})
	require.NoError(t, err)

	assert.Equal(t, []string{"fa", "en"}, fake.languages())
	require.Len(t, lines, 2)
	assert.Equal(t, CaptionLine{Start: 0, Text: "salam"}, lines[0])
	assert.Equal(t, "1:15 - donya", FormatTimestamp(lines[1]))
}

func TestFetchTranscriptStopsAtFirstMatch(t *testing.T) {
	fake := &fakeInnertube{transcripts: map[string]string{
		"fa": innertubeTranscript,
		"en": innertubeTranscript,
	}}
	provider := NewTranscriptClient(fake.httpClient())

	_, err := provider.FetchTranscript(context.Background(), testVideoID, []string{"fa", "en"})
	require.NoError(t, err)
	assert.Equal(t, []string{"fa"}, fake.languages())
}

func TestFetchTranscriptAllLanguagesFail(t *testing.T) {
	fake := &fakeInnertube{}
	provider := NewTranscriptClient(fake.httpClient())

	lines, err := provider.FetchTranscript(context.Background(), testVideoID, []string{"fa", "en"})
	require.Error(t, err)
	assert.Nil(t, lines)

	assert.Equal(t, []string{"fa", "en"}, fake.languages())
	assert.True(t, strings.HasPrefix(err.Error(),
		"no transcript found for any of the requested languages [fa, en]: "), err.Error())

	var statusErr youtube.ErrUnexpectedStatusCode
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, youtube.ErrUnexpectedStatusCode(http.StatusBadRequest), statusErr)
}

func TestFetchTranscriptStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fake := &fakeInnertube{onTranscript: cancel}
	provider := NewTranscriptClient(fake.httpClient())

	_, err := provider.FetchTranscript(ctx, testVideoID, []string{"fa", "en", "de"})
	require.Error(t, err)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"fa"}, fake.languages())
}

func TestFetchTranscriptDefaultLanguage(t *testing.T) {
	fake := &fakeInnertube{transcripts: map[string]string{"": innertubeTranscript}}
	provider := NewTranscriptClient(fake.httpClient())

	lines, err := provider.FetchTranscript(context.Background(), testVideoID, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{""}, fake.languages())
	assert.Len(t, lines, 2)
}

func TestCaptionLines(t *testing.T) {
	transcript := youtube.VideoTranscript{
		{Text: "hi", StartMs: 0, Duration: 1500},
		{Text: "there", StartMs: 2000, Duration: 800},
		{Text: "hello", StartMs: 75800, Duration: 1000},
	}

	lines := captionLines(transcript)
	require.Len(t, lines, 3)
	assert.Equal(t, CaptionLine{Start: 0, Text: "hi"}, lines[0])
	assert.Equal(t, CaptionLine{Start: 2, Text: "there"}, lines[1])
	assert.InDelta(t, 75.8, lines[2].Start, 1e-9)
	assert.Equal(t, "1:15 - hello", FormatTimestamp(lines[2]))
}

func TestCaptionLinesEmpty(t *testing.T) {
	lines := captionLines(nil)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestNewClient(t *testing.T) {
	client := NewClient(&config.YouTubeConfig{
		OEmbedURL:          "https://www.youtube.com/oembed",
		WatchURL:           "https://www.youtube.com/watch",
		TimestampLanguages: []string{"en"},
	})

	require.NotNil(t, client.MetadataService)
	require.NotNil(t, client.CaptionService)
	assert.IsType(t, &TranscriptClient{}, client.CaptionService.provider)
	assert.Equal(t, []string{"en"}, client.CaptionService.timestampLanguages)
	assert.Contains(t, client.OEmbedURL("abc"), "https://www.youtube.com/oembed?format=json")
}
