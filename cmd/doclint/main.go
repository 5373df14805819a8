package main

import (
	"fmt"
	"os"

	"github.com/acoyfellow/doclint/internal/adapters/canonical"
	"github.com/acoyfellow/doclint/internal/adapters/llm"
	"github.com/acoyfellow/doclint/internal/adapters/logger"
	"github.com/acoyfellow/doclint/internal/config"
	"github.com/acoyfellow/doclint/internal/core/alignment"
	"github.com/acoyfellow/doclint/internal/lint"
	"github.com/acoyfellow/doclint/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "doclint"
	serverVersion = "0.1.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewStdLogger(cfg.LogJSON)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	canon := canonical.New(canonical.DefaultMinTokenLength)
	engine, err := alignment.NewEngine(alignment.DefaultConfig(), log, canon)
	if err != nil {
		log.Error("Failed to create alignment engine", "error", err)
		os.Exit(1)
	}

	var linter *lint.Linter
	if cfg.OpenRouterAPIKey != "" {
		client, err := llm.NewOpenRouterClient(cfg.OpenRouterAPIKey, cfg.Model, log)
		if err != nil {
			log.Error("Failed to create OpenRouter client", "error", err)
			os.Exit(1)
		}
		linter = lint.NewLinter(client, log)
	} else {
		log.Warn("OPENROUTER_API_KEY is not set, lint will report an error until it is configured")
	}

	s := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
	)

	registered := []tools.Tool{
		tools.NewCompareTool(engine, log),
		tools.NewLintTool(linter, log),
	}
	for _, tool := range registered {
		s.AddTool(tool.Handle(), tool.Handler)
		log.Info("Registered tool", "name", tool.Handle().Name)
	}

	log.Info("Starting doclint MCP server",
		"transport", "stdio",
		"model", cfg.Model,
	)

	if err := server.ServeStdio(s); err != nil {
		log.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
