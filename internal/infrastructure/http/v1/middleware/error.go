package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"policywizard/internal/core/apperror"
	"policywizard/pkg/logger"
)

// ErrorHandler middleware transforms errors into consistent JSON responses.
// Hides internal errors from clients while logging full details.
//
// Body: {"code", "error", "details"} and, for unresolvable ids, "invalidIds".
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		renderError(c)
	}
}

// renderError writes the last gin error unless a response was already written.
func renderError(c *gin.Context) {
	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err

	if appErr, ok := apperror.AsAppError(err); ok {
		if appErr.Err != nil || appErr.HTTPStatus >= http.StatusInternalServerError {
			logger.Error(c.Request.Context(), "request error",
				"code", appErr.Code,
				"message", appErr.Message,
				"cause", appErr.Err,
			)
		}

		body := gin.H{
			"code":    appErr.Code,
			"error":   appErr.Message,
			"details": appErr.Details,
		}
		if ids, ok := appErr.Details[apperror.DetailInvalidIDs]; ok {
			body[apperror.DetailInvalidIDs] = ids
		}

		c.JSON(appErr.HTTPStatus, body)
		return
	}

	logger.Error(c.Request.Context(), "unhandled error",
		"error", err,
	)

	c.JSON(http.StatusInternalServerError, gin.H{
		"code":  apperror.CodeInternal,
		"error": "Internal server error",
		"details": map[string]any{
			"request_id": c.GetString("request_id"),
		},
	})
}
