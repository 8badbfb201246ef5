package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sharan-555/portfolio-api/internal/analytics"
	"github.com/sharan-555/portfolio-api/internal/common"
	"github.com/sharan-555/portfolio-api/internal/contact"
	"github.com/sharan-555/portfolio-api/internal/store/rabbitmq"
)

type contactReq struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *Handler) SubmitContact(c *gin.Context) {
	var req contactReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.FailFields(c, "validation failed", validationFields(err))
		return
	}

	id, err := common.NewULID()
	if err != nil {
		log.Printf("[Contact] ulid failed err=%v", err)
		common.Fail(c, http.StatusInternalServerError, "Failed to send message. Please try again.")
		return
	}

	now := time.Now().UTC()
	msg := &contact.Message{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    contact.StatusNew,
		IPAddress: clientIP(c),
		CreatedAt: now,
	}
	if err := h.Contacts.Insert(c.Request.Context(), msg); err != nil {
		log.Printf("[Contact] insert failed err=%v", err)
		common.Fail(c, http.StatusInternalServerError, "Failed to send message. Please try again.")
		return
	}

	// notification dispatch is best-effort; the submission already succeeded
	if h.Notifier != nil {
		if err := h.Notifier.PublishNotification(c.Request.Context(), rabbitmq.NotificationMessage{
			ContactID: msg.ID,
			Name:      msg.Name,
			Email:     msg.Email,
			Subject:   msg.Subject,
			Message:   msg.Message,
			IPAddress: msg.IPAddress,
			CreatedAt: now,
		}); err != nil {
			log.Printf("[Contact] notification publish failed contact_id=%s err=%v", msg.ID, err)
		}
	}

	_ = h.Tracker.Track(c.Request.Context(), analytics.Event{
		Name: "contact_form_submission",
		Data: map[string]any{
			"subject":        req.Subject,
			"message_length": len(req.Message),
		},
		UserAgent: c.GetHeader("User-Agent"),
		IPAddress: clientIP(c),
	})

	common.Success(c, "Message sent successfully! You'll hear back within 24 hours.")
}

// validationFields flattens binding errors into field -> reason pairs.
func validationFields(err error) map[string]string {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			name := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "email":
				fields[name] = "must be a valid email address"
			default:
				fields[name] = "required"
			}
		}
		return fields
	}
	fields["body"] = "invalid json"
	return fields
}
