package controllers

import (
	"CampusTour/services"
	"CampusTour/utils"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type FeedbackController struct {
	FeedbackService *services.FeedbackService
}

func NewFeedbackController(feedbackService *services.FeedbackService) *FeedbackController {
	return &FeedbackController{
		FeedbackService: feedbackService,
	}
}

// FeedbackRequest is accepted either as JSON or as a multipart form. The
// multipart form may carry one file in the "image" field.
type FeedbackRequest struct {
	Name    utils.LooseString `json:"name" form:"name"`
	Email   utils.LooseString `json:"email" form:"email"`
	Message utils.LooseString `json:"message" form:"message"`
}

// formImage returns the "image" file of a multipart request, nil when there
// is none. More than one file is an error.
func formImage(c *gin.Context) (*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	files := form.File["image"]
	switch len(files) {
	case 0:
		return nil, nil
	case 1:
		return files[0], nil
	}
	return nil, fmt.Errorf("expected at most one image, got %d", len(files))
}

func (f *FeedbackController) SubmitFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		c.Error(utils.WrapError(http.StatusInternalServerError, "Failed to submit feedback", err))
		return
	}

	input := services.FeedbackInput{
		Name:    req.Name.String(),
		Email:   req.Email.String(),
		Message: req.Message.String(),
	}

	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		image, err := formImage(c)
		if err != nil {
			c.Error(utils.WrapError(http.StatusInternalServerError, "Failed to submit feedback", err))
			return
		}
		input.Image = image
	}

	if _, err := f.FeedbackService.RecordFeedback(c.Request.Context(), input); err != nil {
		c.Error(utils.WrapError(http.StatusInternalServerError, "Failed to submit feedback", err))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feedback submitted!")
}

func (f *FeedbackController) ListFeedback(c *gin.Context) {
	feedbacks, err := f.FeedbackService.ListFeedback(c.Request.Context())
	if err != nil {
		c.Error(utils.WrapError(http.StatusInternalServerError, "Failed to fetch feedback", err))
		return
	}

	c.JSON(http.StatusOK, feedbacks)
}
