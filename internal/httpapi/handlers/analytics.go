package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sharan-555/portfolio-api/internal/analytics"
	"github.com/sharan-555/portfolio-api/internal/common"
)

type trackReq struct {
	Event     string         `json:"event" binding:"required"`
	Data      map[string]any `json:"data"`
	SessionID string         `json:"session_id"`
}

// TrackEvent records a client-side analytics event. Tracking is never
// surfaced as a failure: a broken write degrades to a soft success message.
func (h *Handler) TrackEvent(c *gin.Context) {
	var req trackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.FailFields(c, "validation failed", map[string]string{"event": "required"})
		return
	}

	err := h.Tracker.Track(c.Request.Context(), analytics.Event{
		Name:      req.Event,
		Data:      req.Data,
		SessionID: req.SessionID,
		UserAgent: c.GetHeader("User-Agent"),
		IPAddress: clientIP(c),
	})
	if err != nil {
		common.Success(c, "Event tracking failed but request completed")
		return
	}
	common.Success(c, "Event tracked successfully")
}
