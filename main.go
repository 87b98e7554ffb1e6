// File: zodiac/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"zodiac/config"
	"zodiac/handlers"
	"zodiac/middleware"
	"zodiac/routes"
	"zodiac/services/analysis"
	ai "zodiac/services/intelligence"
	"zodiac/services/tokens"
	"zodiac/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("main: failed to load config: %v", err)
	}
	cfg := config.AppConfig

	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	completionClient, closer, err := ai.NewCompletionClient(context.Background(), cfg)
	if err != nil {
		logger.Fatal("main: failed to initialize completion client", zap.Error(err))
	}
	defer closer.Close()

	analysisSvc := analysis.NewDefaultAnalysisService(
		completionClient,
		tokens.NewEstimator(),
		analysis.NewPolicy(cfg.FastModel, cfg.DeepModel, analysis.DefaultHighDepthSections()),
		analysis.DefaultSections(),
		logger,
	)
	analysisHandler := handlers.NewAnalysisHandler(analysisSvc)

	handlerBundle := &handlers.HandlerBundle{
		ZodiacAnalysisHandler:  analysisHandler.ZodiacAnalysisHandler,
		SectionAnalysisHandler: analysisHandler.SectionAnalysisHandler,
	}

	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	routes.RegisterRoutes(router, handlerBundle, cfg)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Info("Starting server",
		zap.String("addr", srv.Addr),
		zap.String("mode", cfg.AnalysisMode),
		zap.String("provider", cfg.LLMProvider),
	)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("main: server stopped gracefully")
}
