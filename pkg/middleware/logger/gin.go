package logger

import (
	"time"

	"github.com/gin-gonic/gin"
)

// LogWithWriter is the gin access log middleware.
func LogWithWriter() gin.HandlerFunc {
	return func(g *gin.Context) {
		start := time.Now()
		path := g.Request.URL.Path
		if raw := g.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		g.Next()

		Infof(g.Request.Context(), "%s %s %d %s client=%s",
			g.Request.Method,
			path,
			g.Writer.Status(),
			time.Since(start),
			g.ClientIP(),
		)
	}
}
