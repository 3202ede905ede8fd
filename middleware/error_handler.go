package middleware

import (
	"CampusTour/logging"
	"CampusTour/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandlerMiddleware renders the last error attached with c.Error as
// {"error": message}. The underlying cause is logged, never returned.
func ErrorHandlerMiddleware(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var customErr *utils.CustomError
		if !errors.As(err, &customErr) {
			customErr = utils.WrapError(http.StatusInternalServerError, "Internal Server Error", err)
		}

		if customErr.StatusCode >= http.StatusInternalServerError {
			logger.Error(c.Request.Context(), customErr.Message, "error", err, "path", c.Request.URL.Path)
		} else {
			logger.Info(c.Request.Context(), customErr.Message, "error", err, "path", c.Request.URL.Path)
		}

		if c.Writer.Written() {
			return
		}
		utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
	}
}
