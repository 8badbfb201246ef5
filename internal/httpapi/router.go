package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sharan-555/portfolio-api/internal/common"
	"github.com/sharan-555/portfolio-api/internal/httpapi/handlers"
	"github.com/sharan-555/portfolio-api/internal/httpapi/middleware"
)

func NewRouter(h *handlers.Handler, corsOrigins string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(corsMiddleware(corsOrigins))

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	api := r.Group("/api")
	api.GET("/", h.Root)
	api.GET("/health", h.Health)
	api.POST("/chat", h.Chat)
	api.POST("/contact", h.SubmitContact)
	api.GET("/resume/download", h.DownloadResume)
	api.POST("/analytics/track", h.TrackEvent)

	return r
}

func corsMiddleware(origins string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origins == "" || origins == "*" {
		cfg.AllowAllOrigins = true
		// credentials cannot ride along with a wildcard origin
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = strings.Split(origins, ",")
	}
	return cors.New(cfg)
}
