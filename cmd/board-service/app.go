package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"whisperboard/internal/board"
	"whisperboard/internal/config"
	"whisperboard/internal/constants"
	"whisperboard/internal/logger"
	"whisperboard/internal/recordstore"
	"whisperboard/pkg/health"
	"whisperboard/pkg/metrics"
	"whisperboard/pkg/middleware"
)

type App struct {
	config *config.Config
	logger logger.Logger
	store  *recordstore.Client
	server *http.Server
	router *gin.Engine
}

func NewApp(cfg *config.Config, log logger.Logger) *App {
	return &App{
		config: cfg,
		logger: log,
	}
}

func (a *App) Initialize(ctx context.Context) error {
	a.store = recordstore.NewClient(
		a.config.Store.BaseURL,
		a.config.Store.APIKey,
		a.config.Store.TimeoutSeconds,
	)

	if err := a.initRouter(); err != nil {
		return fmt.Errorf("failed to initialize router: %w", err)
	}

	a.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  a.config.Server.ReadTimeoutSeconds,
		WriteTimeout: a.config.Server.WriteTimeoutSeconds,
	}

	return nil
}

func (a *App) initRouter() error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(a.logger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(a.logger))

	svc := board.NewService(a.store, a.config.Store, a.config.Server.IsProduction(), a.logger)
	handler := board.NewHandler(svc, a.logger)
	handler.RegisterRoutes(router)

	metrics.RegisterBoardMetrics()

	healthRegistry := health.NewCheckerRegistry()
	if a.config.Store.APIKey != "" && a.config.Store.CollectionID != "" {
		healthRegistry.Register(health.NewRecordStoreChecker(a.store, a.config.Store.CollectionID))
	}

	router.GET("/health", func(c *gin.Context) {
		h := healthRegistry.Check(c.Request.Context())
		statusCode := http.StatusOK
		if h.Status == health.StatusUnhealthy {
			statusCode = http.StatusServiceUnavailable
		}
		c.JSON(statusCode, h)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	a.router = router
	return nil
}

func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		a.logger.InfowCtx(ctx, "Server listening", "port", a.config.Server.Port)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		return a.Shutdown()
	case err := <-errChan:
		return err
	}
}

func (a *App) Shutdown() error {
	a.logger.Infow("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if a.server != nil {
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
	}

	a.logger.Infow("Server exited successfully")
	return nil
}
