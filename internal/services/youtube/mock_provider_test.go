package youtube

import (
	"context"
	"sync"
)

// mockTranscriptProvider returns canned lines and records each call.
type mockTranscriptProvider struct {
	mu    sync.Mutex
	lines []CaptionLine
	err   error
	calls []providerCall
}

type providerCall struct {
	videoID   string
	languages []string
}

func (m *mockTranscriptProvider) FetchTranscript(ctx context.Context, videoID string, languages []string) ([]CaptionLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, providerCall{videoID: videoID, languages: languages})
	if m.err != nil {
		return nil, m.err
	}
	return m.lines, nil
}

func (m *mockTranscriptProvider) lastCall() providerCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.calls) == 0 {
		return providerCall{}
	}
	return m.calls[len(m.calls)-1]
}

func (m *mockTranscriptProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
