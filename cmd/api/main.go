package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "tasktrack/internal/adapter/db"
	httpadapter "tasktrack/internal/adapter/http"
	"tasktrack/internal/adapter/http/handlers"
	httpmiddleware "tasktrack/internal/adapter/http/middleware"
	appservice "tasktrack/internal/app/service"
	"tasktrack/internal/config"
	"tasktrack/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	authService := appservice.NewAuthService(cfg.JWTSecret)
	userRepository := dbadapter.NewUserRepository(db)
	categoryRepository := dbadapter.NewCategoryRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	userService := appservice.NewUserService(userRepository, authService)
	categoryService := appservice.NewCategoryService(categoryRepository)
	taskService := appservice.NewTaskService(taskRepository, categoryRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	taskHandler := handlers.NewTaskHandler(taskService)
	httpadapter.RegisterRoutes(r, authService, healthHandler, userHandler, categoryHandler, taskHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
