package middleware

import (
	"github.com/gin-gonic/gin"

	"geotjs/internal/core/apperror"
	"geotjs/pkg/logger"
)

// ErrorHandler writes the JSON body for the last error a handler attached.
// Internal causes are logged and hidden from the client.
func ErrorHandler(mappings ...apperror.Mapping) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := apperror.Translate(c.Errors.Last().Err, mappings...)
		if appErr.HTTPStatus >= 500 {
			logger.Error(c.Request.Context(), "request failed",
				"code", appErr.Code,
				"cause", appErr.Err,
			)
			appErr = appErr.WithDetail("request_id", c.GetString("request_id"))
		} else if appErr.Err != nil {
			logger.Debug(c.Request.Context(), "request rejected",
				"code", appErr.Code,
				"cause", appErr.Err,
			)
		}

		c.JSON(appErr.HTTPStatus, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
			"details": appErr.Details,
		})
	}
}
