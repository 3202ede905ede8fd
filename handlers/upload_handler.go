package handlers

import (
	"CampusTour/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterUploadRoutes serves stored images. Mounted outside the API group so
// the URLs saved with feedback resolve as-is.
func RegisterUploadRoutes(router *gin.RouterGroup, uploadController *controllers.UploadController) {
	router.GET("/uploads/*filename", uploadController.ServeUpload)
	router.HEAD("/uploads/*filename", uploadController.ServeUpload)
}
