package main

import (
	"fmt"

	log "github.com/charmbracelet/log"

	"github.com/bdelibalta/fabrick-gateway/infra/initializer"
	"github.com/bdelibalta/fabrick-gateway/pkg/app"
	"github.com/bdelibalta/fabrick-gateway/pkg/config"
	"github.com/bdelibalta/fabrick-gateway/webapi"
)

// @title Fabrick Gateway API
// @version 1.0.0
// @description Account balance, transaction history and loan transfer
// @description operations backed by the Fabrick banking upstream.
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	a := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return fiberApp.Listen(addr)
}
