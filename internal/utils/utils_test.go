package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIDs(t *testing.T) {
	correlationID := GenerateCorrelationID()
	assert.NotEmpty(t, correlationID)

	requestID := GenerateRequestID()
	assert.True(t, strings.HasPrefix(requestID, "req_"))

	assert.NotEqual(t, correlationID, requestID)
	assert.NotEqual(t, correlationID, GenerateCorrelationID())
}

func TestContextIDs(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetCorrelationID(ctx))
	assert.Empty(t, GetRequestID(ctx))

	ctx = WithCorrelationID(ctx, "corr-1")
	ctx = WithRequestID(ctx, "req_1")
	assert.Equal(t, "corr-1", GetCorrelationID(ctx))
	assert.Equal(t, "req_1", GetRequestID(ctx))
}

func TestLogIncludesContextIDs(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() { SetLogOutput(os.Stdout) })

	ctx := WithRequestID(WithCorrelationID(context.Background(), "corr-2"), "req_2")
	LogError(ctx, "lookup failed", errors.New("boom"), Fields{"video_id": "abc123"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "lookup failed", entry["message"])
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "corr-2", entry["correlation_id"])
	assert.Equal(t, "req_2", entry["request_id"])
	assert.Equal(t, "abc123", entry["video_id"])
	assert.Equal(t, "boom", entry["error"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("chatty", &buf)
	assert.Equal(t, "info", l.GetLevel().String())
}

func TestSetLogLevel(t *testing.T) {
	t.Cleanup(func() { GetLogger().SetLevel(logrus.InfoLevel) })

	require.NoError(t, SetLogLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())

	assert.Error(t, SetLogLevel("chatty"))
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())

	require.NoError(t, SetLogLevel(""))
	assert.Equal(t, logrus.InfoLevel, GetLogger().GetLevel())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"en", "fa"}, SplitList(" en , ,fa,"))
	assert.Nil(t, SplitList(" , "))
	assert.Nil(t, SplitList(""))
}

func TestAppErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   ErrorCode
		wantStatus int
	}{
		{"invalid input", NewInvalidInputError("No URL provided"), ErrorCodeInvalidInput, http.StatusBadRequest},
		{"provider", NewProviderError("Error getting video data: timeout", "timeout"), ErrorCodeProviderError, http.StatusBadGateway},
		{"validation", NewValidationError("Invalid request body", nil), ErrorCodeValidationError, http.StatusBadRequest},
		{"rate limit", NewRateLimitError(), ErrorCodeRateLimitExceeded, http.StatusTooManyRequests},
		{"internal", NewInternalError(), ErrorCodeInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.StatusCode)
			assert.Contains(t, tt.err.Error(), string(tt.wantCode))
		})
	}
}

func TestProviderErrorDetails(t *testing.T) {
	err := NewProviderError("Error generating timestamps: no transcript", "no transcript")
	assert.Equal(t, "no transcript", err.Details["cause"])

	err = NewProviderError("Error generating timestamps", "")
	assert.NotContains(t, err.Details, "cause")
}
