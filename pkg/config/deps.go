package config

import (
	"context"
	"log/slog"

	"github.com/jhaabhiiishek/finmanBackend/pkg/eventbus"
	"github.com/jhaabhiiishek/finmanBackend/pkg/repository"
)

// Deps holds the infrastructure the services are built on.
type Deps struct {
	Uow      repository.UnitOfWork
	EventBus eventbus.Bus
	Logger   *slog.Logger
	Config   *App
	// Ping reports whether the backing store is reachable.
	Ping func(ctx context.Context) error
	// Close releases connections held by the dependencies.
	Close func() error
}
