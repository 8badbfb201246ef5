package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sharan-555/portfolio-api/internal/common"
)

const apiVersion = "1.0.0"

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Sharandeep Portfolio API is running",
		"version": apiVersion,
		"status":  "healthy",
		"features": []string{
			"AI Chatbot",
			"Contact Form",
			"Resume Download",
			"Analytics Tracking",
		},
	})
}

// Health is the readiness probe; an unreachable store is the expected
// detection signal here, not a defect.
func (h *Handler) Health(c *gin.Context) {
	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		log.Printf("[Health] database ping failed err=%v", err)
		common.Fail(c, http.StatusServiceUnavailable, "Service unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"database":   "connected",
		"ai_service": "ready",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}
