// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"novel-maker-api/internal/application/story"
	"novel-maker-api/internal/config"
	"novel-maker-api/internal/interfaces/http/handler"
	"novel-maker-api/internal/interfaces/http/middleware"
	"novel-maker-api/internal/store"
)

// Router HTTP 路由器
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
}

// New 创建新的路由器
func New(cfg *config.Config, st *store.ProjectStore, storyService *story.Service, db handler.Pinger) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine: engine,
		cfg:    cfg,
	}

	r.setupMiddleware()
	r.setupRoutes(st, storyService, db)

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
}

// setupRoutes 配置路由
func (r *Router) setupRoutes(st *store.ProjectStore, storyService *story.Service, db handler.Pinger) {
	healthHandler := handler.NewHealthHandler(r.cfg.App.Version, db)

	r.engine.GET("/health", healthHandler.Health)
	r.engine.GET("/ready", healthHandler.Ready)
	r.engine.GET("/live", healthHandler.Live)

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	v1 := r.engine.Group("/v1")
	RegisterV1Routes(
		v1,
		handler.NewProjectHandler(st),
		handler.NewEpisodeHandler(st),
		handler.NewCharacterHandler(st),
		handler.NewMemoHandler(st),
		handler.NewWorldSettingHandler(st),
		handler.NewTermHandler(st),
		handler.NewEventHandler(st),
		handler.NewItemHandler(st),
		handler.NewGenerationHandler(storyService),
		handler.NewTransferHandler(st),
		handler.NewSettingsHandler(st),
	)
}
