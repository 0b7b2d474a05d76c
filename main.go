package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salvatore/config"
	"salvatore/cron"
	"salvatore/database"
	bookingsRepo "salvatore/database/repository/bookings"
	"salvatore/handlers"
	"salvatore/middleware"
	"salvatore/routes"
	"salvatore/services/assistant"
	"salvatore/services/booking"
	ai "salvatore/services/intelligence"
	"salvatore/services/session"
	"salvatore/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx := context.Background()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// Session store.
	store := buildSessionStore(ctx, logger)

	// Language model.
	model := buildChatModel(ctx, logger)

	// Google persistence: degrade to a no-op saver until OAuth completes.
	var saver booking.Saver
	if httpClient, err := utils.GoogleHTTPClient(ctx); err != nil {
		logger.Warn("Google integration disabled, run the /auth flow to enable it", zap.Error(err))
		saver = &booking.NoopSaver{Logger: logger}
	} else {
		googleSaver, err := booking.NewGoogleSaver(ctx, httpClient, booking.GoogleSaverConfig{
			CalendarID: config.AppConfig.CalendarID,
			SheetID:    config.AppConfig.SheetID,
			SheetRange: config.AppConfig.SheetRange,
			Timezone:   config.AppConfig.EventTimezone,
		}, logger)
		if err != nil {
			logger.Warn("Google saver setup failed, persistence disabled", zap.Error(err))
			saver = &booking.NoopSaver{Logger: logger}
		} else {
			saver = googleSaver
		}
	}

	// Optional booking archive.
	var archive bookingsRepo.BookingArchive
	if config.AppConfig.DatabaseURL != "" {
		database.InitDB()
		archive = bookingsRepo.NewMongoBookingArchive()
	}

	assistantSvc := &assistant.DefaultAssistantService{
		Store:   store,
		Model:   model,
		Saver:   saver,
		Archive: archive,
		Machine: assistant.NewMachine(),
		Extractor: &assistant.Extractor{
			Model:  model,
			Window: config.AppConfig.HistoryWindow,
			Logger: logger,
		},
		Mode:      config.AppConfig.AssistantMode,
		ChunkSize: config.AppConfig.StreamChunkSize,
		Logger:    logger,
	}

	assistantHandler := handlers.NewAssistantHandler(assistantSvc, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		HandleAssistant:     assistantHandler.HandleAssistant,
		AuthRedirectHandler: handlers.AuthRedirectHandler,
		AuthCallbackHandler: handlers.AuthCallbackHandler,
	}
	if archive != nil {
		handlerBundle.ListBookingsHandler = handlers.NewBookingsHandler(archive).ListBookingsHandler
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (mode=%s, store=%s)...",
		srv.Addr, config.AppConfig.AssistantMode, config.AppConfig.SessionStore)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

func buildSessionStore(ctx context.Context, logger *zap.Logger) session.Store {
	switch config.AppConfig.SessionStore {
	case "file":
		store, err := session.NewFileStore(config.AppConfig.SessionsDir)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize file session store: %v", err)
		}
		ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
		cron.InitSessionJanitor(config.AppConfig.SessionsDir, ttl, logger)
		return store
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisSessionDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if _, err := client.Ping(pingCtx).Result(); err != nil {
			logger.Sugar().Fatalf("main: failed to connect to Redis: %v", err)
		}
		ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
		return session.NewRedisStore(client, ttl)
	default:
		return session.NewMemoryStore()
	}
}

func buildChatModel(ctx context.Context, logger *zap.Logger) ai.ChatModel {
	if config.AppConfig.ModelProvider == "gemini" {
		model, err := ai.NewGeminiClient(ctx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		return model
	}
	return ai.NewOpenAIClient(
		config.AppConfig.OpenAIAPIKey,
		config.AppConfig.OpenAIBaseURL,
		config.AppConfig.OpenAIModel,
	)
}
