package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cs_chatbot_backend/internal/config"
	"cs_chatbot_backend/internal/controller"
	"cs_chatbot_backend/internal/repository"
	"cs_chatbot_backend/internal/service"
	"cs_chatbot_backend/pkg/database"
	"cs_chatbot_backend/pkg/logger"
	"cs_chatbot_backend/pkg/monitoring"
	"cs_chatbot_backend/pkg/security"
	"cs_chatbot_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Mongo  *mongo.Client
	Redis  *redis.Client
}

type repositories struct {
	pastQuestion *repository.PastQuestionRepository
	analytics    *repository.AnalyticsRepository
}

type services struct {
	pastQuestion *service.PastQuestionService
	ai           *service.AIService
	whatsapp     *service.WhatsAppService
	chat         *service.ChatService
	auth         *service.AuthService
}

type controllers struct {
	chat   *controller.ChatController
	admin  *controller.AdminController
	health *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, mongoClient *mongo.Client) *repositories {
	return &repositories{
		pastQuestion: repository.NewPastQuestionRepository(mongoClient, &a.Config.Mongo),
		analytics:    repository.NewAnalyticsRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.pastQuestion = service.NewPastQuestionService(repos.pastQuestion, rdb, logger.Log)
	s.ai = service.NewAIService(cfg.AI)
	s.whatsapp = service.NewWhatsAppService(cfg.WhatsApp)
	s.chat = service.NewChatService(s.pastQuestion, s.ai, s.whatsapp, repos.analytics, logger.Log)
	s.auth = service.NewAuthService(cfg)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		chat:   controller.NewChatController(s.chat),
		admin:  controller.NewAdminController(s.auth, s.pastQuestion),
		health: controller.NewHealthController(a.DB, a.Mongo, a.Redis),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests == 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window == 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	mongoClient, err := database.InitMongo(&cfg.Mongo)
	if err != nil {
		logger.Log.Fatal("Failed to initialize mongodb", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Mongo:  mongoClient,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, mongoClient)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		_, err := tracing.InitTracer("cs-chatbot", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if err := a.Mongo.Disconnect(ctx); err != nil {
		logger.Log.Error("Failed to disconnect mongodb", zap.Error(err))
	}

	log.Println("Server exiting")
}
