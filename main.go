// File: venuely/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"venuely/config"
	"venuely/cron"
	"venuely/database"
	bookingRepoPkg "venuely/database/repository/booking"
	userRepoPkg "venuely/database/repository/user"
	"venuely/handlers"
	"venuely/middleware"
	"venuely/models"
	"venuely/routes"
	"venuely/services/assistant"
	"venuely/services/booking"
	"venuely/services/tasks"
	"venuely/services/user"
	"venuely/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	if err := bookingRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to create booking indexes: %v", err)
	}
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to create user indexes: %v", err)
	}
	cancelIndexes()

	// Reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()
	reminderScheduler := tasks.NewAsynqReminderScheduler(
		asynqClient,
		time.Duration(config.AppConfig.ReminderLeadMin)*time.Minute,
	)
	cron.InitReminderWorker(bookingRepo)

	// services.
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Reminders: reminderScheduler,
		Logger:    logger,
	}

	sessionStore := assistant.NewRedisSessionStore(
		utils.GetChatSessionCacheClient(),
		time.Duration(config.AppConfig.ChatSessionTTLMin)*time.Minute,
	)
	assistantService := assistant.NewDefaultAssistantService(
		sessionStore,
		bookingService,
		models.DefaultVenues,
		logger,
	)

	// handlers.
	handlerSet := &routes.Handlers{
		Booking: handlers.NewBookingHandler(bookingService, models.DefaultVenues, logger),
		Chat:    handlers.NewChatHandler(assistantService, logger),
		Auth:    handlers.NewAuthHandler(userService, logger),
	}
	routes.RegisterRoutes(router, handlerSet)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
