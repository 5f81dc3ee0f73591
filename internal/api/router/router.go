package router

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/denisAlshanov/yttools/internal/api/handlers"
	"github.com/denisAlshanov/yttools/internal/api/middleware"
	"github.com/denisAlshanov/yttools/internal/config"
)

type Router struct {
	engine *gin.Engine
	config *config.Config
	server *http.Server
}

func NewRouter(cfg *config.Config, videoHandler *handlers.VideoHandler, healthHandler *handlers.HealthHandler) *Router {
	if cfg.Server.Host == "0.0.0.0" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.CorrelationIDMiddleware())

	// Health endpoints (no rate limit)
	health := engine.Group("/")
	{
		health.GET("/health", healthHandler.Health)
		health.GET("/live", healthHandler.Liveness)
	}

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(&cfg.API))
	{
		video := api.Group("/video")
		{
			video.GET("/data", videoHandler.GetVideoData)             // /api/v1/video/data
			video.POST("/data", videoHandler.GetVideoData)            // /api/v1/video/data
			video.GET("/captions", videoHandler.GetVideoCaptions)     // /api/v1/video/captions
			video.POST("/captions", videoHandler.GetVideoCaptions)    // /api/v1/video/captions
			video.GET("/timestamps", videoHandler.GetVideoTimestamps) // /api/v1/video/timestamps
			video.POST("/timestamps", videoHandler.GetVideoTimestamps)
		}
	}

	return &Router{
		engine: engine,
		config: cfg,
		server: &http.Server{
			Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start blocks serving HTTP until Shutdown is called.
func (r *Router) Start() error {
	if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
