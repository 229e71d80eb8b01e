package routes

import (
	"github.com/feedhub/feedhub-service/http/controller"
	middlewares "github.com/feedhub/feedhub-service/http/middleware"
	"github.com/gin-gonic/gin"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)

	// Static media, served straight from the upload bucket.
	r.GET("/uploads/:filename", ctrl.ServeUpload)

	// Mock downstream messaging sink.
	r.POST("/webhook/whatsapp", ctrl.WhatsAppWebhook)

	apiRoutes := r.Group("/api")
	{
		apiRoutes.GET("/health", ctrl.Health)

		adRoutes := apiRoutes.Group("/ads")
		{
			adRoutes.GET("/", ctrl.ListAds)
			adRoutes.POST("/", ctrl.CreateAd)
		}

		authRoutes := apiRoutes.Group("/auth")
		{
			authRoutes.POST("/register", ctrl.Register)
			authRoutes.GET("/verify/:token", ctrl.VerifyEmail)
			authRoutes.POST("/login", ctrl.Login)
			authRoutes.GET("/google", ctrl.GoogleLogin)
			authRoutes.GET("/google/callback", ctrl.GoogleCallback)
			authRoutes.GET("/me", middles.AuthMiddleware, ctrl.Me)
		}
	}

	return r
}
