package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"sem-planner/internal/adapter/cache"
	"sem-planner/internal/adapter/events"
	"sem-planner/internal/adapter/postgres"
	"sem-planner/internal/adapter/sqlite"
	"sem-planner/internal/adapter/usecase"
	"sem-planner/internal/config"
	"sem-planner/internal/config/configs"
	"sem-planner/internal/core/planner"
	"sem-planner/internal/core/port"
	"sem-planner/internal/db"
)

// app holds everything a command needs. close releases resources in
// reverse order of acquisition.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	svc     *usecase.PlanUseCase
	closers []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	if plannerConfigPath != "" {
		cfg.Planner.ConfigPath = plannerConfigPath
	}
	logger := cfg.Log.New(os.Stdout)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func loadSettings(cfg config.Config, logger *slog.Logger) (planner.Settings, error) {
	settings, err := config.LoadPlannerSettings(cfg.Planner.ConfigPath)
	if err != nil {
		return settings, err
	}
	// invalid settings surface through the health check instead of
	// refusing to start
	if err = settings.Validate(); err != nil {
		logger.Warn("planner settings are invalid", slog.Any("error", err))
	}
	return settings, nil
}

func random(cfg configs.Planner) planner.Random {
	if cfg.RandomSeed != 0 {
		return planner.NewSeededRandom(cfg.RandomSeed)
	}
	return planner.SystemRandom{}
}

// bootstrap wires the store, cache, event publisher and use case.
// migrate forces migrations regardless of PSQL_RUN_MIGRATIONS.
func bootstrap(ctx context.Context, migrate bool) (_ *app, err error) {
	cfg, logger, err := loadConfig()
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: logger}
	defer func() {
		if err != nil {
			a.close()
		}
	}()

	settings, err := loadSettings(cfg, logger)
	if err != nil {
		return nil, err
	}

	repo, err := a.openStore(ctx, migrate)
	if err != nil {
		return nil, err
	}

	a.svc = usecase.NewPlanUseCase(repo, usecase.Options{
		Settings: settings,
		Random:   random(cfg.Planner),
		Cache:    a.openCache(ctx),
		Events:   a.openEvents(),
		AppName:  cfg.App.Name,
		Version:  cfg.App.Version,
		Logger:   logger,
	})
	return a, nil
}

func (a *app) openStore(ctx context.Context, migrate bool) (port.PlanRepository, error) {
	switch a.cfg.Store.Driver {
	case configs.DriverSQLite:
		conn, err := db.NewSQLite(ctx, a.cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		a.closers = append(a.closers, func() { _ = conn.Close() })
		// a local database is always brought up to date
		if err = db.MigrateSQLite(conn); err != nil {
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		a.logger.Info("using sqlite store", slog.String("path", a.cfg.Store.SQLitePath))
		return sqlite.NewPlanRepository(conn), nil

	default:
		if migrate || a.cfg.Psql.RunMigrations {
			if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
				return nil, fmt.Errorf("migrate postgres: %w", err)
			}
			a.logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection error: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		return postgres.NewPlanRepository(pool), nil
	}
}

// openCache falls back to a no-op cache when REDIS_ADDRESS is unset or
// not a valid URL.
func (a *app) openCache(ctx context.Context) port.PlanCache {
	if !a.cfg.Redis.Enabled() {
		return cache.NoopPlanCache{}
	}
	client, err := cache.Connect(ctx, a.cfg.Redis.Address)
	if err != nil {
		a.logger.Warn("redis disabled", slog.Any("error", err))
		return cache.NoopPlanCache{}
	}
	a.closers = append(a.closers, func() { _ = client.Close() })

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err = client.Ping(pingCtx).Err(); err != nil {
		a.logger.Warn("redis not reachable, plans are cached once it is", slog.Any("error", err))
	}
	return cache.NewRedisPlanCache(client, a.cfg.Redis.Prefix, a.cfg.Redis.TTL)
}

func (a *app) openEvents() port.EventPublisher {
	if !a.cfg.Kafka.Enabled() {
		return events.NewLoggingPublisher(a.logger)
	}
	pub, err := events.NewKafkaPublisher(a.cfg.Kafka.Brokers, a.cfg.Kafka.PlanCreatedTopic, a.cfg.App.Name)
	if err != nil {
		a.logger.Warn("kafka disabled", slog.Any("error", err))
		return events.NewLoggingPublisher(a.logger)
	}
	a.closers = append(a.closers, func() {
		if err := pub.Close(); err != nil {
			a.logger.Warn("close kafka writer", slog.Any("error", err))
		}
	})
	return pub
}
