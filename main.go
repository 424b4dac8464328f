package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitchenrent/config"
	"kitchenrent/cron"
	"kitchenrent/database"
	availabilityRepo "kitchenrent/database/repository/availability"
	kitchenRepo "kitchenrent/database/repository/kitchen"
	reservationRepo "kitchenrent/database/repository/reservation"
	userRepoPkg "kitchenrent/database/repository/user"
	"kitchenrent/handlers"
	"kitchenrent/middleware"
	"kitchenrent/routes"
	"kitchenrent/services/booking"
	"kitchenrent/services/notification"
	"kitchenrent/services/reservation"
	"kitchenrent/services/user"
	"kitchenrent/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitCache()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if err := utils.FirebaseInit(ctx); err != nil {
		logger.Warn("main: push notifications disabled", zap.Error(err))
	}
	if err := utils.TelegramInit(); err != nil {
		logger.Warn("main: telegram notifications disabled", zap.Error(err))
	}

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	if err := availRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("main: failed to create availability indexes", zap.Error(err))
	}
	kitchens := kitchenRepo.NewCachedKitchenRepo(
		kitchenRepo.NewMongoKitchenRepo(),
		utils.GetCacheClient(),
		config.KitchenCacheTTL(),
		logger,
	)
	resRepo := reservationRepo.NewMongoReservationRepo()
	if err := resRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("main: failed to create reservation indexes", zap.Error(err))
	}
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	reservationService := &reservation.DefaultReservationService{Repo: resRepo}

	// Notices are queued by the booking flow and delivered by the worker.
	queueClient := asynq.NewClient(cron.QueueRedisOpt())
	defer queueClient.Close()

	channels := notification.ChannelSet{}
	if utils.TelegramBot != nil {
		channels[notification.ChannelTelegram] = notification.NewTelegramDispatcher(utils.TelegramBot, userService, logger)
	}
	if utils.FCMClient != nil {
		channels[notification.ChannelPush] = notification.NewFCMDispatcher(utils.FCMClient, userService, logger)
	}
	if len(channels) == 0 {
		logger.Warn("main: no notification channel configured; payment notices will only be logged")
	}
	worker := cron.InitPaymentNoticeWorker(ctx, channels)

	bookingService := booking.NewBookingSessionService(
		kitchens,
		&booking.RepoAvailabilitySource{Kitchens: kitchens, Repo: availRepo, Logger: logger},
		booking.FlowDeps{
			Accounts:  userService,
			Notifier:  notification.NewQueueDispatcher(queueClient, channels.Names(), logger),
			Committer: reservationService,
			Logger:    logger,
		},
		config.SessionIdleTimeout(),
		logger,
	)
	bookingService.StartSweeper(ctx, time.Minute)

	utils.StartHealthMonitor(ctx, []*redis.Client{utils.GetCacheClient()}, database.MongoClient, 30*time.Second)

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewBookingHandler(bookingService),
		handlers.NewReservationHandler(reservationService),
	)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

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

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	stop()
	worker.Shutdown()
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
