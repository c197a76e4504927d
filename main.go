// @title CS Department Chatbot API
// @version 1.0
// @description Backend for the Computer Science department chatbot: routes
// @description student queries to feedback logging, past-exam lookup or an
// @description LLM, over a mobile JSON endpoint and a WhatsApp webhook.

// @host localhost:3000
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"cs_chatbot_backend/internal/app"
	"cs_chatbot_backend/internal/config"
	"cs_chatbot_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
