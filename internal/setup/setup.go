package setup

import (
	"context"
	"errors"
	"fmt"

	"github.com/coolfrog-dev/coolfrog/internal/config"
	"github.com/coolfrog-dev/coolfrog/internal/events"
	"github.com/coolfrog-dev/coolfrog/internal/events/kafka"
	"github.com/coolfrog-dev/coolfrog/internal/handler"
	"github.com/coolfrog-dev/coolfrog/internal/logger"
	"github.com/coolfrog-dev/coolfrog/internal/markdown"
	"github.com/coolfrog-dev/coolfrog/internal/router"
	"github.com/coolfrog-dev/coolfrog/internal/service"
	"github.com/coolfrog-dev/coolfrog/internal/session"
	"github.com/coolfrog-dev/coolfrog/internal/storage/mongo"
	"github.com/coolfrog-dev/coolfrog/internal/storage/pg"
	"github.com/coolfrog-dev/coolfrog/internal/templates"
	"github.com/coolfrog-dev/coolfrog/internal/validation"
)

// Dependencies holds everything main needs to serve and to shut down.
type Dependencies struct {
	Storage *pg.Storage
	Router  *router.Dependencies
	closers []func(context.Context) error
}

// SetupDependencies connects the stores, builds the services and the handler.
// Migrations are expected to have run already.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg, pg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	deps := &Dependencies{Storage: storage}
	deps.closers = append(deps.closers, func(context.Context) error { return storage.Cleanup() })

	sessions, err := sessionStore(ctx, cfg, storage, deps)
	if err != nil {
		deps.Cleanup(ctx)
		return nil, err
	}

	publisher, err := eventPublisher(cfg, deps)
	if err != nil {
		deps.Cleanup(ctx)
		return nil, err
	}

	tmpl, err := templates.Load()
	if err != nil {
		deps.Cleanup(ctx)
		return nil, fmt.Errorf("load templates: %w", err)
	}

	validator := validation.New()
	topics := service.NewTopic(storage, validator, publisher)
	posts := service.NewPost(storage, validator, publisher)
	users := service.NewUser(storage)

	h := handler.New(tmpl, cfg.Public.Families, markdown.New(), topics, posts, users, storage)

	deps.Router = &router.Dependencies{
		Handler:  h,
		Sessions: session.NewGate(sessions, cfg.Public.SessionCookie),
		Public:   cfg.Public,
	}
	return deps, nil
}

func sessionStore(ctx context.Context, cfg *config.Config, storage *pg.Storage, deps *Dependencies) (session.Store, error) {
	if cfg.Public.SessionBackend != config.SessionBackendMongo {
		return storage.Sessions(), nil
	}
	store, err := mongo.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	deps.closers = append(deps.closers, store.Cleanup)
	return store, nil
}

func eventPublisher(cfg *config.Config, deps *Dependencies) (events.Publisher, error) {
	if !cfg.Public.Kafka.Enabled() {
		logger.Log.Info("kafka brokers not configured, events are dropped")
		return events.Noop{}, nil
	}
	producer, err := kafka.New(cfg.Public.Kafka)
	if err != nil {
		return nil, err
	}
	deps.closers = append(deps.closers, func(context.Context) error { return producer.Close() })
	return producer, nil
}

// Cleanup releases resources in reverse order of acquisition.
func (d *Dependencies) Cleanup(ctx context.Context) error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil
	return errors.Join(errs...)
}
