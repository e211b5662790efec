package main

import (
	"context"
	"net/http"
	"os"

	httpadapter "github.com/agroclima/agroclima-api/internal/adapters/http"
	"github.com/agroclima/agroclima-api/internal/adapters/llm"
	"github.com/agroclima/agroclima-api/internal/adapters/session"
	"github.com/agroclima/agroclima-api/internal/adapters/storage/memory"
	"github.com/agroclima/agroclima-api/internal/app/advisor"
	"github.com/agroclima/agroclima-api/internal/app/chat"
	"github.com/agroclima/agroclima-api/internal/config"
	"github.com/agroclima/agroclima-api/internal/domain"
	"github.com/agroclima/agroclima-api/internal/observability"
)

func main() {
	ctx := context.Background()
	log := observability.Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Error("loading config", "error", err)
		os.Exit(1)
	}

	var gateway domain.ModelGateway
	switch cfg.LLM.Provider {
	case "mock":
		log.Info("using mock model gateway")
		gateway = llm.NewMockGateway()
	case "gemini":
		log.Info("using gemini model gateway", "project", cfg.GCP.Project, "model", cfg.LLM.Model)
		gateway, err = llm.NewGeminiGateway(ctx, cfg.GCP.Project, cfg.GCP.Location, cfg.LLM.Model)
		if err != nil {
			log.Error("initializing gemini gateway", "error", err)
			os.Exit(1)
		}
	default:
		log.Info("using openai model gateway", "model", cfg.LLM.Model)
		if cfg.LLM.APIKey == "" {
			log.Warn("llm.api_key is empty, upstream calls will fail")
		}
		gateway = llm.NewOpenAIGateway(cfg.LLM.APIKey, cfg.LLM.Model, cfg.LLM.BaseURL)
	}

	store := memory.NewHistoryStore(cfg.Session.TTL)
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)

	chatSvc := chat.NewService(gateway, store)
	advisorSvc := advisor.NewService(gateway)

	handler := httpadapter.NewServer(chatSvc, advisorSvc, sessions, cfg.CORS.AllowedOrigins)

	addr := ":" + cfg.Port
	log.Info("agroclima api listening", "addr", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
