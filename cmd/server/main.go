package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"propertychat/internal/analysis"
	"propertychat/internal/config"
	"propertychat/internal/conversation"
	"propertychat/internal/handler"
	"propertychat/internal/repository"
	"propertychat/internal/service"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.NewLogger(cfg.Logging)
	defer logger.Sync()

	logger.Info("starting property chat service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit),
	)

	gin.SetMode(cfg.Server.GinMode)

	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer repo.Close()
	logger.Info("connected to PostgreSQL")

	var store conversation.Store
	if cfg.Redis.Address != "" {
		redisStore, err := conversation.NewRedisStore(cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to Redis", zap.Error(err))
		}
		defer redisStore.Close()
		store = redisStore
		logger.Info("using Redis conversation store", zap.String("addr", cfg.Redis.Address))
	} else {
		store = conversation.NewMemoryStore()
		logger.Info("using in-memory conversation store")
	}

	generator := service.NewGenerationClient(&cfg.Generation)
	if cfg.Generation.Enabled {
		logger.Info("generation client initialized",
			zap.String("api_base", cfg.Generation.APIBase),
			zap.String("model", cfg.Generation.Model),
		)
	} else {
		logger.Warn("generation service disabled, chat replies will use the deterministic fallback")
	}

	chatService := service.NewChatService(
		repo,
		generator,
		store,
		analysis.NewTextAnalyzer(),
		analysis.NewIntentClassifier(),
		logger,
		cfg.Chat.ResultLimit,
	)
	propertyService := service.NewPropertyService(repo, cfg.Chat.ResultLimit, cfg.Chat.MaxResultLimit)

	chatHandler := handler.NewChatHandler(chatService, cfg.Chat.DefaultUserID, logger)
	propertyHandler := handler.NewPropertyHandler(propertyService)

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"service":    "property-chat",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/chat", chatHandler.Chat)
		apiV1.GET("/properties", propertyHandler.List)
		apiV1.GET("/properties/:id", propertyHandler.Get)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
