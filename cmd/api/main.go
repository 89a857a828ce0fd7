package main

import (
	"fmt"
	"os"

	_ "studio_api/docs"
	"studio_api/internal/adapter/http/routes"
	"studio_api/internal/config"
	"studio_api/internal/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Studio API
// @version         1.0
// @description     Video production studio backend: configurator, onboarding contracts, deposit payments.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey WebhookSecret
// @in header
// @name X-Webhook-Secret
// @description Shared secret of the CMS webhooks and editor endpoints.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := routes.Run(cfg, log); err != nil {
		log.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
