package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/sync/errgroup"

	"seekr/backend/internal/config"
	"seekr/backend/internal/handlers"
	"seekr/backend/internal/logger"
	"seekr/backend/internal/repositories"
	"seekr/backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(logger.Config{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		TimeFormat:   cfg.Log.TimeFormat,
		ReportCaller: cfg.Log.ReportCaller,
	})
	logger.Info().Str("env", cfg.Server.Env).Msg("Config loaded")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize database")
	}

	// Initialize repositories
	resumeRepo := repositories.NewResumeRepository(db, cfg.Retention.ResumeTTL)
	settingRepo := repositories.NewUserSettingRepository(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize generator; the API still serves CRUD routes without one
	generator, err := services.NewGenerator(ctx, services.GeneratorConfig{
		Provider:        cfg.LLM.Provider,
		Model:           cfg.LLM.Model,
		MaxTokens:       cfg.LLM.MaxTokens,
		Temperature:     cfg.LLM.Temperature,
		AnthropicAPIKey: cfg.LLM.AnthropicAPIKey,
		GeminiAPIKey:    cfg.LLM.GeminiAPIKey,
	})
	switch {
	case errors.Is(err, services.ErrGeneratorNotConfigured):
		logger.Warn().Err(err).Msg("Chat endpoints will fail until an API key is configured")
		generator = nil
	case err != nil:
		logger.Fatal().Err(err).Msg("Failed to initialize generator")
	default:
		logger.Info().Str("provider", generator.Provider()).Msg("Generator initialized")
	}

	chatService := services.NewChatService(generator, cfg.LLM.Timeout)
	parser := services.NewDocumentParser()

	sweeper := services.NewExpirySweeper(resumeRepo, cfg.Retention.SweepInterval)
	sweeper.Start(ctx)

	app := fiber.New(fiber.Config{
		AppName:      "Seekr API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 30*time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize) + 1<<20,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(handlers.RequestLogger())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowOrigins,
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders: "X-Request-ID",
	}))

	handlers.RegisterRoutes(app, handlers.Handlers{
		Resume:   handlers.NewResumeHandler(resumeRepo),
		Settings: handlers.NewSettingsHandler(settingRepo),
		Chat:     handlers.NewChatHandler(chatService, parser, cfg.Upload.MaxFileSize),
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := cfg.ListenAddr()
		logger.Info().Str("addr", addr).Msg("Server starting")
		return app.Listen(addr)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("Shutting down server")
		sweeper.Stop()
		return app.ShutdownWithTimeout(10 * time.Second)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}
	logger.Info().Msg("Server stopped")
}
