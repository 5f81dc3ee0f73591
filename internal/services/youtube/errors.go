package youtube

import "errors"

type ErrorKind int

const (
	// KindInvalidInput marks a missing or unusable video URL.
	KindInvalidInput ErrorKind = iota + 1
	// KindProvider marks a failure of the oEmbed or transcript endpoint.
	KindProvider
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindProvider:
		return "provider_error"
	default:
		return "unknown"
	}
}

const (
	msgNoURL         = "No URL provided"
	msgVideoIDFailed = "Error getting video ID from URL"

	stageVideoData  = "Error getting video data"
	stageCaptions   = "Error getting captions for video"
	stageTimestamps = "Error generating timestamps"
)

// Error is returned by every Tools operation. Cause holds the upstream
// failure as text and is empty for invalid input.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   string
}

func (e *Error) Error() string {
	if e.Cause == "" {
		return e.Message
	}
	return e.Message + ": " + e.Cause
}

func newInvalidInputError(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func newProviderError(stage string, cause error) *Error {
	return &Error{Kind: KindProvider, Message: stage, Cause: cause.Error()}
}

func IsInvalidInput(err error) bool {
	return isKind(err, KindInvalidInput)
}

func IsProviderError(err error) bool {
	return isKind(err, KindProvider)
}

func isKind(err error, kind ErrorKind) bool {
	var ytErr *Error
	return errors.As(err, &ytErr) && ytErr.Kind == kind
}
