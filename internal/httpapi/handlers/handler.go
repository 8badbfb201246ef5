package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sharan-555/portfolio-api/internal/analytics"
	"github.com/sharan-555/portfolio-api/internal/chat"
	"github.com/sharan-555/portfolio-api/internal/config"
	"github.com/sharan-555/portfolio-api/internal/contact"
	"github.com/sharan-555/portfolio-api/internal/resume"
	"github.com/sharan-555/portfolio-api/internal/store/rabbitmq"
	"gorm.io/gorm"
)

// Notifier dispatches contact notifications to the email worker. It is an
// optional, best-effort collaborator.
type Notifier interface {
	PublishNotification(ctx context.Context, n rabbitmq.NotificationMessage) error
}

// Handler bundles the collaborators the routes delegate to. Everything is
// constructed at startup and injected; there is no process-wide state.
type Handler struct {
	DB       *gorm.DB
	Cfg      config.Config
	ChatSvc  *chat.Service
	Contacts *contact.Repo
	Tracker  *analytics.Tracker
	Resume   *resume.Generator
	Notifier Notifier
}

func NewHandler(db *gorm.DB, cfg config.Config, chatSvc *chat.Service, contacts *contact.Repo, tracker *analytics.Tracker, gen *resume.Generator, notifier Notifier) *Handler {
	return &Handler{
		DB:       db,
		Cfg:      cfg,
		ChatSvc:  chatSvc,
		Contacts: contacts,
		Tracker:  tracker,
		Resume:   gen,
		Notifier: notifier,
	}
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the peer
// address.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	return c.RemoteIP()
}
