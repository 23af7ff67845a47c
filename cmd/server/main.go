package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/charmbracelet/log"
	_ "github.com/jhaabhiiishek/finmanBackend/docs"
	"github.com/jhaabhiiishek/finmanBackend/infra/initializer"
	"github.com/jhaabhiiishek/finmanBackend/pkg/app"
	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/webapi"
)

// @title finman API
// @version 1.0.0
// @description Personal finance backend: accounts, transfers and expenses
// @host localhost:5000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	fiberApp := webapi.SetupApp(app.New(deps))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	serveErr := make(chan error, 1)
	go func() { serveErr <- fiberApp.Listen(addr) }()

	select {
	case err = <-serveErr:
	case <-ctx.Done():
		logger.Info("Shutting down", "timeout", cfg.Server.ShutdownTimeout)
		err = fiberApp.ShutdownWithTimeout(cfg.Server.ShutdownTimeout)
	}

	if closeErr := deps.Close(); closeErr != nil {
		logger.Error("Failed to release dependencies", "error", closeErr)
	}
	return err
}
