package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/cricviz/internal/config"
	"github.com/riskibarqy/cricviz/internal/domain/cricketer"
	cacherepo "github.com/riskibarqy/cricviz/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/cricviz/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricviz/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/cricviz/internal/platform/cache"
	idgen "github.com/riskibarqy/cricviz/internal/platform/id"
	"github.com/riskibarqy/cricviz/internal/platform/logging"
	"github.com/riskibarqy/cricviz/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

// App holds the wired service and the resources that must be released on exit.
type App struct {
	Cricketers *usecase.CricketerService
	// Ephemeral is set when records live only in process memory.
	Ephemeral bool

	closers []func() error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	a := &App{}
	repo, err := a.newRepository(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	a.Cricketers = usecase.NewCricketerService(repo, idgen.NewUUIDGenerator(), logger)

	if cfg.BootstrapSeed {
		imported, err := a.Cricketers.Bootstrap(ctx)
		if err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("bootstrap seed: %w", err)
		}
		if imported {
			logger.InfoContext(ctx, "bootstrap seed imported classical batters")
		}
	}

	return a, nil
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) newRepository(ctx context.Context, cfg config.Config, logger *logging.Logger) (cricketer.Repository, error) {
	var repo cricketer.Repository
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		repo = postgres.NewCricketerRepository(db)
		logger.DebugContext(ctx, "using postgres store", "db_name", dbNameFromURL(cfg.DBURL))
	case config.BackendMemory, "":
		repo = memory.NewCricketerRepository()
		a.Ephemeral = true
		logger.DebugContext(ctx, "using memory store")
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
	}

	if cfg.CacheEnabled {
		repo = cacherepo.NewCricketerRepository(repo, basecache.NewStore(cfg.CacheTTL))
	}
	return repo, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
