package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/logger"
	"hotel-booking/routes"
	"hotel-booking/services"
)

func main() {
	// Load .env (optional)
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLog, err := logger.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = appLog.Sync() }()
	zap.ReplaceGlobals(appLog)

	if envErr != nil {
		appLog.Info(".env not loaded; continuing with environment variables")
	}
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDatabase(cfg.Database, appLog)
	if err != nil {
		appLog.Fatal("database connect failed", zap.Error(err))
	}

	if cfg.Database.Seed {
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := config.SeedDatabase(seedCtx, db, time.Now(), appLog)
		cancel()
		if err != nil {
			appLog.Fatal("database seed failed", zap.Error(err))
		}
	}

	locker, closeLocker := newLocker(cfg, appLog)
	defer closeLocker()

	// Initialize services
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	customerService := services.NewCustomerService(db)
	bookingManager := services.NewBookingManager(roomService, bookingService,
		services.WithLocker(locker),
		services.WithLogger(appLog.Named("booking")),
	)

	// Initialize controllers
	bookingController := controllers.NewBookingController(bookingService, bookingManager, appLog)
	roomController := controllers.NewRoomController(roomService, appLog)
	customerController := controllers.NewCustomerController(customerService, appLog)

	router, err := routes.SetupRouter(bookingController, roomController, customerController, cfg.CORS.Origins, appLog)
	if err != nil {
		appLog.Fatal("router setup failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLog.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal("ListenAndServe failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	appLog.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error("server forced to shutdown", zap.Error(err))
		return
	}

	appLog.Info("server stopped gracefully")
}

// newLocker picks the Redis lock when configured so several instances share
// one booking serialization point; otherwise the in-process lock.
func newLocker(cfg *config.Config, appLog *zap.Logger) (services.Locker, func()) {
	if !cfg.Redis.Enabled {
		appLog.Warn("redis disabled; booking lock is local to this process")
		return services.NewMutexLocker(), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		appLog.Fatal("redis ping failed", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}

	locker := services.NewRedisLocker(client, services.RedisLockerConfig{
		Prefix:        cfg.Booking.LockKeyPrefix,
		TTL:           cfg.Booking.LockTTL,
		RetryInterval: cfg.Booking.LockRetry,
	}, appLog.Named("lock"))
	return locker, func() { _ = client.Close() }
}
