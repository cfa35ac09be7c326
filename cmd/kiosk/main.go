package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/cropsync/kiosk/internal/pkg/config"
	"github.com/cropsync/kiosk/internal/pkg/database"
	"github.com/cropsync/kiosk/internal/pkg/health"
	jwtpkg "github.com/cropsync/kiosk/internal/pkg/jwt"
	"github.com/cropsync/kiosk/internal/pkg/logger"
	"github.com/cropsync/kiosk/internal/pkg/middleware"
	"github.com/cropsync/kiosk/internal/pkg/server"
	"github.com/cropsync/kiosk/services/auth/handler"
	httpHandler "github.com/cropsync/kiosk/services/auth/handler/http"
	"github.com/cropsync/kiosk/services/auth/repository"
	"github.com/cropsync/kiosk/services/auth/usecase"
)

func main() {
	appName := "CropSync Kiosk API"
	configPath := "config/kiosk.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Token manager fails fast on a missing secret; outside local there is
	// no fallback default.
	tokenManager, err := jwtpkg.NewTokenManager(configs.JWT)
	if err != nil {
		zapLogger.Fatal("Failed to initialize token manager", logger.Err(err))
	}

	// Initialize MySQL connection pool
	mysqlClient, err := database.NewMySQLClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to MySQL", logger.Err(err))
	}
	defer mysqlClient.Close()

	// Initialize repository and usecase
	userRepo := repository.NewUserRepo(mysqlClient.GetDB())
	authUC := usecase.NewAuthUC(userRepo, tokenManager)

	// Handlers
	authHandler := httpHandler.NewAuthHandler(authUC)
	userHandler := httpHandler.NewUserHandler(authUC)
	Handler := handler.NewHandler(authHandler, userHandler)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Middlewares. CORS stays wide open: kiosks are served from rotating
	// local origins.
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(echomiddleware.CORS())

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName, health.NewMySQLHealthChecker(mysqlClient))

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
