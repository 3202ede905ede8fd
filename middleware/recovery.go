package middleware

import (
	"CampusTour/logging"
	"CampusTour/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the usual 500 error body.
func Recovery(logger logging.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "panic recovered", "panic", recovered, "path", c.Request.URL.Path)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal Server Error")
	})
}
