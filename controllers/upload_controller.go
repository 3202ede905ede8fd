package controllers

import (
	"CampusTour/services"
	"CampusTour/storage"
	"CampusTour/utils"
	"errors"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

// UploadController serves stored feedback images under /uploads.
type UploadController struct {
	UploadService *services.UploadService
}

func NewUploadController(uploadService *services.UploadService) *UploadController {
	return &UploadController{
		UploadService: uploadService,
	}
}

func (u *UploadController) ServeUpload(c *gin.Context) {
	name := strings.TrimPrefix(c.Param("filename"), "/")

	file, err := u.UploadService.Open(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidName) {
			c.Error(utils.WrapError(http.StatusNotFound, "File not found", err))
			return
		}
		c.Error(utils.WrapError(http.StatusInternalServerError, "Failed to read file", err))
		return
	}
	defer file.Close()

	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, -1, contentType, file, map[string]string{
		"Cache-Control": "public, max-age=86400",
	})
}
