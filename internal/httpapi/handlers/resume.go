package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sharan-555/portfolio-api/internal/analytics"
	"github.com/sharan-555/portfolio-api/internal/common"
	"github.com/sharan-555/portfolio-api/internal/resume"
)

// DownloadResume streams a freshly generated PDF. Generation failure is a
// real failure here: the document is the deliverable.
func (h *Handler) DownloadResume(c *gin.Context) {
	pdf, err := h.Resume.Build()
	if err != nil {
		log.Printf("[Resume] generate failed err=%v", err)
		common.Fail(c, http.StatusInternalServerError, "Failed to generate resume")
		return
	}

	_ = h.Tracker.Track(c.Request.Context(), analytics.Event{
		Name: "resume_download",
		Data: map[string]any{
			"format":       "pdf",
			"generated_at": time.Now().UTC().Format(time.RFC3339),
		},
		UserAgent: c.GetHeader("User-Agent"),
		IPAddress: clientIP(c),
	})

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", resume.Filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
