package handlers

import (
	"CampusTour/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterFeedbackRoutes(router *gin.RouterGroup, feedbackController *controllers.FeedbackController) {
	feedbackGroup := router.Group("/feedback")
	{
		feedbackGroup.POST("", feedbackController.SubmitFeedback)
		feedbackGroup.GET("", feedbackController.ListFeedback)
	}
}
