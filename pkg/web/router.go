package web

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/wen89126-oss/lab-compound-db/internal/config"
	"github.com/wen89126-oss/lab-compound-db/pkg/middleware/logger"
	compoundView "github.com/wen89126-oss/lab-compound-db/pkg/web/views/compound"
	"github.com/wen89126-oss/lab-compound-db/pkg/web/views/health"
)

func NewRouter(ctx context.Context, g *gin.Engine) {
	installMiddleware(g)
	installURL(ctx, g)
}

func installMiddleware(g *gin.Engine) {
	g.ContextWithFallback = true
	server := config.Global().Server
	g.Use(cors.Default())
	g.Use(otelgin.Middleware(fmt.Sprintf("%s-%s", server.Platform, server.Service)))
	g.Use(logger.LogWithWriter())
}

func installURL(_ context.Context, g *gin.Engine) {
	api := g.Group("/api")
	api.GET("/health", health.Health)
	api.GET("/health/live", health.Live)
	api.GET("/health/ready", health.Ready)

	cHandle := compoundView.NewHandle()

	v1 := api.Group("/v1")
	{
		compoundRouter := v1.Group("/compound")
		compoundRouter.POST("/create", cHandle.Insert)
		compoundRouter.GET("/query", cHandle.Search)
		compoundRouter.GET("/export", cHandle.Export)
		compoundRouter.GET("/options", cHandle.Options)
		compoundRouter.GET("/cas", cHandle.QueryCAS)
		compoundRouter.POST("/delete/request", cHandle.RequestDelete)
		compoundRouter.POST("/delete/confirm", cHandle.ConfirmDelete)
	}
}
