package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"minimalapi/config"
	"minimalapi/handlers"
	"minimalapi/routes"
	"minimalapi/services/calendar"
	"minimalapi/services/generator"
	"minimalapi/utils"

	"github.com/gin-gonic/gin"
)

// @title        Minimal API Demo
// @version      v1
// @description  Minimal API OpenAPI integration example
// @BasePath     /
func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// services.
	generatorService := &generator.DefaultGeneratorService{}
	calendarService := &calendar.DefaultCalendarService{}
	health := utils.NewHealthMonitor(cfg.Env)

	handlerBundle := handlers.NewHandlerBundle(generatorService, calendarService, health, cfg.RandomsMaxCount)
	router, err := routes.NewRouter(cfg, logger, handlerBundle)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build router: %v", err)
	}

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (env=%s)...", srv.Addr, cfg.Env)
	if cfg.IsDevelopment() {
		logger.Sugar().Infof("API documentation at http://localhost:%s/swagger", port)
	}
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
