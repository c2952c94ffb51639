package main

import (
	"log"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/urfave/negroni"

	"github.com/aryanoutlaw/docassist/assistant"
	"github.com/aryanoutlaw/docassist/config"
	"github.com/aryanoutlaw/docassist/handlers"
	"github.com/aryanoutlaw/docassist/logging"
	"github.com/aryanoutlaw/docassist/registry"
	"github.com/aryanoutlaw/docassist/server"
	"github.com/aryanoutlaw/docassist/services/document_service"
	"github.com/aryanoutlaw/docassist/services/llm_service"
)

func main() {
	cfg := config.Load()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	logger.Info("Allowed CORS origins", slog.Any("origins", cfg.AllowedOrigins))

	reg := registry.New()
	registerLLMServices(reg, logger)

	serviceName := cfg.LLMService
	if cfg.GeminiAPIKey == "" && cfg.OpenAIAPIKey == "" {
		logger.Warn("No API key configured, falling back to demo replies")
		serviceName = "demo"
	}

	llm, err := reg.GetLLMService(serviceName)
	if err != nil {
		log.Fatalf("Failed to resolve LLM service: %v", err)
	}
	logger.Info("Using LLM service", slog.String("service", serviceName))

	store := assistant.NewStore()
	extractor := document_service.NewDocumentExtractor(logger)
	service := assistant.NewService(store, extractor, llm, llmConfig(cfg), logger)

	documentHandler := handlers.NewDocumentHandler(service, logger, cfg.MaxUploadSize)
	r := server.SetupRoutes(documentHandler)
	n := setupNegroni(r, cfg.AllowedOrigins)

	if cfg.Environment == "production" {
		server.ServeProduction(n, cfg.Domains, cfg.CertCacheDir)
	} else {
		srv := &http.Server{
			Addr:         ":" + cfg.HTTPPort,
			Handler:      n,
			IdleTimeout:  time.Minute,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 150 * time.Second,
		}
		server.ServeDevelopment(srv)
	}
}

func setupNegroni(r *mux.Router, allowedOrigins []string) *negroni.Negroni {
	n := negroni.New()

	n.Use(negroni.NewRecovery())
	n.Use(negroni.NewLogger())
	n.Use(handlers.NewCORSMiddleware(allowedOrigins))

	n.UseHandler(r)
	return n
}

func registerLLMServices(reg *registry.Registry, logger *slog.Logger) {
	reg.RegisterLLMService("gemini", llm_service.NewGeminiService(logger))
	reg.RegisterLLMService("openai", llm_service.NewOpenAIService(logger))
	reg.RegisterLLMService("demo", llm_service.NewDemoService(logger))
}

// llmConfig is the base config handed to the model backend on every call.
func llmConfig(cfg config.Config) map[string]interface{} {
	switch cfg.LLMService {
	case "openai":
		return map[string]interface{}{
			"api_url":    cfg.OpenAIAPIURL,
			"api_key":    cfg.OpenAIAPIKey,
			"model_name": cfg.OpenAIModel,
		}
	default:
		return map[string]interface{}{
			"api_url":    cfg.GeminiAPIURL,
			"api_key":    cfg.GeminiAPIKey,
			"model_name": cfg.GeminiModel,
		}
	}
}

func initLogger() (*slog.Logger, error) {
	logDir := filepath.Join("logs", "assistant")

	fileHandler, err := logging.NewDailyFileHandler(logDir, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	if err != nil {
		return nil, err
	}

	return slog.New(fileHandler), nil
}
