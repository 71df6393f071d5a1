package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"pet-agent-service/config"
	_ "pet-agent-service/docs" // Swagger docs
	"pet-agent-service/internal/agent/registry"
	"pet-agent-service/internal/dispatch"
	"pet-agent-service/internal/httpserver"
	"pet-agent-service/internal/language"
	"pet-agent-service/internal/sensor"
	"pet-agent-service/pkg/llmprovider"
	"pet-agent-service/pkg/log"
)

// @title       Pet Agent Service API
// @description Multi-agent pet health assistant: LLM routing, specialist answers, language consistency, and collar sensor analysis.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Pet Agent Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}
	manager := llmprovider.NewManager(providers, llmprovider.ManagerConfigFromLLMConfig(&cfg.LLM), logger)

	// 4. Chat dispatch domain
	languageManager := language.New(logger, cfg.Dispatch.DefaultLanguage)
	agentRegistry := registry.New()
	gateway := dispatch.NewGateway(manager)
	engine := dispatch.New(logger, gateway, agentRegistry, languageManager,
		dispatch.WithTransferDelay(cfg.Dispatch.TransferDelay))

	// 5. Sensor domain
	explainer := sensor.NewExplainer(logger, gateway, languageManager)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Dispatcher:      engine,
		Registry:        agentRegistry,
		Explainer:       explainer,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
