package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classalloc/config"
	"classalloc/cron"
	"classalloc/database"
	auditRepo "classalloc/database/repository/audit"
	bookingRepo "classalloc/database/repository/booking"
	directoryRepo "classalloc/database/repository/directory"
	templateRepo "classalloc/database/repository/template"
	"classalloc/handlers"
	"classalloc/middleware"
	"classalloc/routes"
	"classalloc/services/admin"
	"classalloc/services/audit"
	"classalloc/services/booking"
	"classalloc/services/directory"
	"classalloc/services/notification"
	"classalloc/services/tasks"
	"classalloc/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.AppConfig.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	database.InitDB()
	notifyClient := utils.GetNotifyClient()

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	rooms := directoryRepo.NewMongoDirectoryRepo()
	audits := auditRepo.NewMongoAuditRepo()
	templates := templateRepo.NewMongoTemplateRepo()
	for name, ensure := range map[string]func() error{
		"bookings":  bookings.EnsureIndexes,
		"directory": rooms.EnsureIndexes,
		"audits":    audits.EnsureIndexes,
		"templates": templates.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Fatal("Failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}

	// services.
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	recorder := audit.NewRecorder(audits, logger)
	defer recorder.Close()

	notifier, err := notification.NewRedisNotifier(notifyClient, config.AppConfig.NotifyChannel, logger)
	if err != nil {
		logger.Fatal("Failed to initialize notifier", zap.Error(err))
	}

	bookingService := &booking.DefaultBookingService{
		Store:     bookings,
		Directory: rooms,
		Audit:     recorder,
		Notifier:  notifier,
		Metrics:   booking.NewMetrics(registry),
		Logger:    logger,
		Now:       time.Now,
	}
	adminService := &admin.DefaultAdminService{
		Templates: templates,
		Audits:    audits,
		Logger:    logger,
	}
	directoryService := &directory.DefaultDirectoryService{Repo: rooms}

	sweeper := &tasks.Sweeper{Store: bookings, Logger: logger, Now: time.Now}
	stopWorker, err := cron.InitSweepWorker(sweeper, logger)
	if err != nil {
		logger.Fatal("Failed to start retention sweep worker", zap.Error(err))
	}
	defer stopWorker()

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, time.Minute,
		func(ctx context.Context) error { return database.MongoClient.Ping(ctx, nil) },
		func(ctx context.Context) error { return notifyClient.Ping(ctx).Err() },
	)

	// handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	adminHandler := handlers.NewAdminHandler(bookingService, adminService, config.AppConfig.BulkDefaultHorizon)

	handlerBundle := &handlers.HandlerBundle{
		CreateBookingHandler:     bookingHandler.CreateBookingHandler,
		CancelBookingHandler:     bookingHandler.CancelBookingHandler,
		FloorAvailabilityHandler: bookingHandler.FloorAvailabilityHandler,

		ListBuildingsHandler: directoryHandler.ListBuildingsHandler,
		ListFloorsHandler:    directoryHandler.ListFloorsHandler,
		ListRoomsHandler:     directoryHandler.ListRoomsHandler,

		AdminHandler:  adminHandler,
		HealthHandler: handlers.HealthHandler,
	}

	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin, logger))
	routes.RegisterRoutes(router, handlerBundle, registry)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := database.Close(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to close MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
