package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskhub/internal/tracker/activity"
	"taskhub/internal/tracker/config"
	"taskhub/internal/tracker/handler"
	"taskhub/internal/tracker/policy"
	"taskhub/internal/tracker/repository"
	"taskhub/internal/tracker/router"
	"taskhub/internal/tracker/service"
	"taskhub/internal/tracker/util"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a YAML config file (env: "+config.EnvConfigPath+")")
	pflag.Parse()

	// 1. Load Config
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		util.GetLogger().Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Init Logger
	util.InitLogger(cfg.LogLevel, cfg.LogFormat)
	logger := util.GetLogger()

	// 3. Init MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Error("MongoDB is unreachable", "error", err)
		os.Exit(1)
	}

	// 4. Init Layers
	db := client.Database(cfg.DBName)
	repo := repository.NewMongoRepository(db)
	activityRepo := repository.NewMongoActivityRepository(repo)

	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Warn("Failed to ensure indexes", "error", err)
	}
	if err := activityRepo.EnsureActivityIndexes(ctx); err != nil {
		logger.Warn("Failed to ensure activity indexes", "error", err)
	}

	engine, err := policy.NewEngine()
	if err != nil {
		logger.Error("Failed to load policies", "error", err)
		os.Exit(1)
	}
	recorder := activity.NewRecorder(activityRepo, logger, cfg.ActivityTimeout)
	svc := service.NewService(repo, activityRepo, engine, recorder)
	svc.Logger = logger
	h := handler.NewTrackerHandler(svc)

	// 5. Init Echo & Routes
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, h, svc)

	// 6. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Error("Failed to disconnect DB", "error", err)
	}

	logger.Info("Server exited properly")
}
