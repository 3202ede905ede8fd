package handlers

import (
	"CampusTour/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes sets up the login audit routes
func RegisterUserRoutes(router *gin.RouterGroup, userController *controllers.UserController) {
	userGroup := router.Group("/user")
	{
		userGroup.POST("/login", userController.RecordLogin)
		userGroup.GET("/logins", userController.ListLogins)
	}
}
