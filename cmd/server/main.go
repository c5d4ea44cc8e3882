package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/config"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/event"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/handler"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/repository"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/router"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/service"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/util"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/wizard"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub004/internal/gacp/workflow"
)

func main() {
	// 0. Init Logger
	util.InitLogger()
	logger := util.GetLogger()

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. Init MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}

	// 3. Init Layers
	db := client.Database(cfg.DBName)
	repo := repository.NewMongoRepository(db, repository.Collections{
		Surveys:      cfg.SurveysCollection,
		Certificates: cfg.CertificatesCollection,
		Users:        cfg.UsersCollection,
		Audit:        cfg.AuditCollection,
	})

	// Ensure Indexes
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		logger.Warn("Failed to ensure indexes", "error", err)
	}

	// Workflow engine from the embedded transition and permission policies
	engine, err := workflow.NewEngine()
	if err != nil {
		logger.Error("Failed to load workflow policies", "error", err)
		os.Exit(1)
	}
	if err := engine.Validate(); err != nil {
		logger.Error("Workflow policy validation failed", "error", err)
		os.Exit(1)
	}

	// Wizard step manifest
	wiz, err := wizard.New()
	if err != nil {
		logger.Error("Failed to load wizard manifest", "error", err)
		os.Exit(1)
	}

	// Event bus with a logging notifier. Mail or webhook notifiers
	// subscribe here the same way.
	bus := event.NewBus()
	bus.SubscribeAll(func(ev event.Event) {
		logger.Info("workflow event",
			"type", ev.Type,
			"survey_id", ev.SurveyID,
			"actor_id", ev.ActorID,
			"status", ev.Status,
		)
	})

	svc := service.NewService(repo, engine, wiz, bus, cfg.JWTSecret, cfg.TokenTTL)
	h := handler.NewSurveyHandler(svc)

	// 4. Init Echo & Routes
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, h, engine, cfg.JWTSecret)

	// 5. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	if err := client.Disconnect(ctx); err != nil {
		logger.Error("MongoDB Disconnect Failed", "error", err)
	}
}
