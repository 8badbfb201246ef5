package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sharan-555/portfolio-api/internal/analytics"
	"github.com/sharan-555/portfolio-api/internal/common"
)

type chatReq struct {
	// pointer so a missing field is distinguishable from an empty message;
	// empty text is accepted and forwarded as-is
	Message   *string `json:"message" binding:"required"`
	SessionID string  `json:"session_id"`
}

func (h *Handler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.FailFields(c, "invalid request", map[string]string{"message": "required"})
		return
	}

	reply, sessionID, err := h.ChatSvc.Chat(c.Request.Context(), req.SessionID, *req.Message)
	if err != nil {
		log.Printf("[Chat] failed session_id=%s err=%v", req.SessionID, err)
		common.Fail(c, http.StatusInternalServerError, "Chat service temporarily unavailable")
		return
	}

	_ = h.Tracker.Track(c.Request.Context(), analytics.Event{
		Name: "chatbot_interaction",
		Data: map[string]any{
			"session_id":      sessionID,
			"message_length":  len(*req.Message),
			"response_length": len(reply),
		},
		SessionID: sessionID,
		UserAgent: c.GetHeader("User-Agent"),
		IPAddress: clientIP(c),
	})

	c.JSON(http.StatusOK, gin.H{
		"reply":      reply,
		"session_id": sessionID,
	})
}
