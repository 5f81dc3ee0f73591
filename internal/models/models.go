package models

import "time"

// VideoRequest is accepted as query parameters on GET and as a JSON body on POST.
type VideoRequest struct {
	URL       string `json:"url" form:"url" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
	Languages string `json:"languages,omitempty" form:"languages" example:"en,fa"`
	Format    string `json:"format,omitempty" form:"format" example:"json"`
}

// Output formats for list results
const (
	FormatJSON = "json"
	FormatText = "text"
)

type CaptionsResponse struct {
	VideoURL  string   `json:"video_url"`
	Languages []string `json:"languages,omitempty"`
	Captions  string   `json:"captions"`
}

type TimestampsResponse struct {
	VideoURL   string   `json:"video_url"`
	Languages  []string `json:"languages,omitempty"`
	Timestamps []string `json:"timestamps"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
}

type ErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error     ErrorBody `json:"error"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
