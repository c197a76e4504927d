package app

import (
	"cs_chatbot_backend/docs"
	"cs_chatbot_backend/internal/config"
	"cs_chatbot_backend/internal/middleware"
	"cs_chatbot_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		chat := api.Group("/chat")
		{
			chat.POST("", c.chat.Query)
			chat.POST("/whatsapp-webhook", c.chat.WhatsAppWebhook)
			chat.GET("/whatsapp-webhook", c.chat.VerifyWebhook)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", c.admin.Login)

			guarded := admin.Group("/")
			guarded.Use(middleware.AdminAuthMiddleware(cfg))
			{
				guarded.POST("/past-questions", c.admin.UpsertPastQuestion)
			}
		}
	}
}
