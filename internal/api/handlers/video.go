package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/yttools/internal/models"
	"github.com/denisAlshanov/yttools/internal/services/youtube"
	"github.com/denisAlshanov/yttools/internal/utils"
)

type VideoHandler struct {
	youtube youtube.Tools
}

func NewVideoHandler(youtube youtube.Tools) *VideoHandler {
	return &VideoHandler{
		youtube: youtube,
	}
}

// GetVideoData godoc
// @Summary Get video metadata
// @Description Look up oEmbed metadata (title, author, thumbnail, ...) for a YouTube URL
// @Tags video
// @Accept json
// @Produce json
// @Param url query string false "YouTube video URL"
// @Param request body models.VideoRequest false "Video URL (POST only)"
// @Success 200 {object} youtube.Metadata
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/video/data [get]
// @Router /api/v1/video/data [post]
func (h *VideoHandler) GetVideoData(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.VideoRequest
	if !h.bindRequest(c, &req) {
		return
	}

	metadata, err := h.youtube.GetVideoData(ctx, req.URL)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, metadata)
}

// GetVideoCaptions godoc
// @Summary Get video captions
// @Description Get the caption text of a YouTube video joined into a single string
// @Tags video
// @Accept json
// @Produce json
// @Param url query string false "YouTube video URL"
// @Param languages query string false "Comma separated language preference, e.g. en,fa"
// @Param request body models.VideoRequest false "Video URL and languages (POST only)"
// @Success 200 {object} models.CaptionsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/video/captions [get]
// @Router /api/v1/video/captions [post]
func (h *VideoHandler) GetVideoCaptions(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.VideoRequest
	if !h.bindRequest(c, &req) {
		return
	}

	languages := youtube.ParseLanguages(req.Languages)
	captions, err := h.youtube.GetVideoCaptions(ctx, req.URL, languages)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CaptionsResponse{
		VideoURL:  req.URL,
		Languages: languages,
		Captions:  captions,
	})
}

// GetVideoTimestamps godoc
// @Summary Get timestamped captions
// @Description Get one "M:SS - text" entry per caption line of a YouTube video
// @Tags video
// @Accept json
// @Produce json
// @Produce plain
// @Param url query string false "YouTube video URL"
// @Param languages query string false "Comma separated language preference, defaults to en"
// @Param format query string false "Response format: json (default) or text"
// @Param request body models.VideoRequest false "Video URL, languages and format (POST only)"
// @Success 200 {object} models.TimestampsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/v1/video/timestamps [get]
// @Router /api/v1/video/timestamps [post]
func (h *VideoHandler) GetVideoTimestamps(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.VideoRequest
	if !h.bindRequest(c, &req) {
		return
	}

	format := strings.ToLower(req.Format)
	if format == "" {
		format = models.FormatJSON
	}
	if format != models.FormatJSON && format != models.FormatText {
		h.errorResponse(c, utils.NewValidationError("Invalid format", map[string]interface{}{
			"format":  req.Format,
			"allowed": []string{models.FormatJSON, models.FormatText},
		}))
		return
	}

	languages := youtube.ParseLanguages(req.Languages)
	timestamps, err := h.youtube.GetVideoTimestamps(ctx, req.URL, languages)
	if err != nil {
		h.serviceErrorResponse(c, err)
		return
	}

	if format == models.FormatText {
		c.String(http.StatusOK, strings.Join(timestamps, "\n"))
		return
	}

	c.JSON(http.StatusOK, models.TimestampsResponse{
		VideoURL:   req.URL,
		Languages:  languages,
		Timestamps: timestamps,
	})
}

// bindRequest reads query parameters for GET and a JSON body otherwise.
func (h *VideoHandler) bindRequest(c *gin.Context, req *models.VideoRequest) bool {
	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(req)
	} else {
		err = c.ShouldBindJSON(req)
	}

	if err != nil {
		h.errorResponse(c, utils.NewValidationError("Invalid request", map[string]interface{}{
			"error": err.Error(),
		}))
		return false
	}
	return true
}

func (h *VideoHandler) serviceErrorResponse(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var ytErr *youtube.Error
	if !errors.As(err, &ytErr) {
		utils.LogError(ctx, "Unexpected video lookup failure", err)
		h.errorResponse(c, utils.NewInternalError())
		return
	}

	switch ytErr.Kind {
	case youtube.KindInvalidInput:
		h.errorResponse(c, utils.NewInvalidInputError(ytErr.Error()))
	case youtube.KindProvider:
		utils.LogError(ctx, "YouTube provider request failed", err, utils.Fields{"path": c.Request.URL.Path})
		h.errorResponse(c, utils.NewProviderError(ytErr.Error(), ytErr.Cause))
	default:
		utils.LogError(ctx, "Unknown video error kind", err)
		h.errorResponse(c, utils.NewInternalError())
	}
}

func (h *VideoHandler) errorResponse(c *gin.Context, err *utils.AppError) {
	c.JSON(err.StatusCode, gin.H{
		"error":      err,
		"request_id": c.GetString("request_id"),
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}
