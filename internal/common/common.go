package common

import (
	"crypto/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

// Fail writes the uniform error envelope. Internal detail never leaves the
// process through here; msg is always a fixed, caller-safe string.
func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{
		"success": false,
		"error":   gin.H{"message": msg},
	})
}

// FailFields is Fail with field-level validation detail attached.
func FailFields(c *gin.Context, msg string, fields map[string]string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"message": msg,
			"fields":  fields,
		},
	})
}

func Success(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": msg,
	})
}

func NewULID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
