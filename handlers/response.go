// File: handlers/response.go
package handlers

import (
	"errors"
	"net/http"

	"hostelhub/services/foodmenu"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Envelope is the uniform response shape for every endpoint.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respondSuccess(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Status: "success", Message: message, Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Status: "error", Message: message})
}

// respondServiceError maps a domain error to its carried status code; anything
// else becomes a 500. The wrapped cause is logged server-side only.
func respondServiceError(c *gin.Context, err error) {
	var domainErr *foodmenu.Error
	if errors.As(err, &domainErr) {
		if cause := domainErr.Unwrap(); cause != nil {
			zap.L().Error("food menu operation failed", zap.Int("status", domainErr.Code), zap.Error(cause))
		}
		respondError(c, domainErr.Code, domainErr.Message)
		return
	}
	zap.L().Error("unexpected food menu error", zap.Error(err))
	respondError(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
}
