package route

import (
	"CampusTour/controllers"
	"CampusTour/handlers"
	"CampusTour/logging"
	"CampusTour/middleware"
	"CampusTour/services"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Dependencies are the services the routes are wired to. They are built
// once in main.
type Dependencies struct {
	Users    *services.UserService
	Feedback *services.FeedbackService
	Uploads  *services.UploadService
	Logger   logging.Logger

	// PublicDir, when set, is served for every path no route matches.
	PublicDir string
}

// NewRouter builds the engine with middleware and every route attached.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.Recovery(deps.Logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "HEAD", "OPTIONS"},
		// browsers never match Authorization against the wildcard
		AllowHeaders:    []string{"*", "Authorization"},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))
	router.Use(middleware.ErrorHandlerMiddleware(deps.Logger))

	RegisterRoutes(router, deps)
	return router
}

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	userController := controllers.NewUserController(deps.Users)
	feedbackController := controllers.NewFeedbackController(deps.Feedback)
	uploadController := controllers.NewUploadController(deps.Uploads)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiRoutes := router.Group("/api")
	{
		handlers.RegisterUserRoutes(apiRoutes, userController)
		handlers.RegisterFeedbackRoutes(apiRoutes, feedbackController)
	}

	handlers.RegisterUploadRoutes(&router.RouterGroup, uploadController)

	if deps.PublicDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(deps.PublicDir))))
	}
}
