// Package bootstrap wires the HTTP serving mode: configuration,
// logging, middlewares, and routes.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/locvowork/scaninsight/internal/config"
	"github.com/locvowork/scaninsight/internal/handler"
	"github.com/locvowork/scaninsight/internal/logger"
)

type App struct {
	Echo *echo.Echo
}

func NewApp() *App {
	e := echo.New()
	e.HideBanner = true
	return &App{Echo: e}
}

func (a *App) Initialize(ctx context.Context) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	if err := logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, false); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	reportHandler := handler.NewReportHandler()

	a.RegisterMiddlewares()
	a.RegisterRoutes(reportHandler)
	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(reportHandler *handler.ReportHandler) {
	a.Echo.POST("/reports", reportHandler.GenerateHandler)
	a.Echo.GET("/healthz", reportHandler.HealthHandler)
}

func (a *App) Run() error {
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
