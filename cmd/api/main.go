package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/james-eo/task-manager/internal/adapter/ai"
	httpadapter "github.com/james-eo/task-manager/internal/adapter/http"
	"github.com/james-eo/task-manager/internal/adapter/http/handlers"
	httpmiddleware "github.com/james-eo/task-manager/internal/adapter/http/middleware"
	"github.com/james-eo/task-manager/internal/adapter/memory"
	"github.com/james-eo/task-manager/internal/app/service"
	"github.com/james-eo/task-manager/internal/config"
	"github.com/james-eo/task-manager/pkg/translator"
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

	assistant := ai.NewClient(cfg.GroqBaseURL, cfg.GroqAPIKey, cfg.GroqModel, cfg.AssistantTimeout)
	if !assistant.Configured() {
		logger.Warn("GROQ_API_KEY not set, natural-language fallback disabled")
	}

	store := memory.NewTaskStore()
	tracker := service.NewTrackerService(store, assistant, cfg.AssistantTimeout)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	healthHandler := handlers.NewHealthHandler(assistant)
	agentHandler := handlers.NewAgentHandler(tracker, store)
	httpadapter.RegisterRoutes(r, healthHandler, agentHandler)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr), zap.String("app", cfg.AppName))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
