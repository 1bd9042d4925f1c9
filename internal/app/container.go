package app

import (
	"context"
	"fmt"

	"employee-dashboard/internal/config"
	"employee-dashboard/internal/infrastructure/cache"
	"employee-dashboard/internal/infrastructure/storage"
	"employee-dashboard/internal/repository"
	"employee-dashboard/internal/seeder"
	"employee-dashboard/internal/usecase"
	"employee-dashboard/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config    config.Config
	Logger    *zap.Logger
	Store     *storage.Store
	Cache     *cache.Redis
	Hub       *ws.Hub
	Dashboard *usecase.DashboardService

	stopHub context.CancelFunc
	hubDone chan struct{}
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	fx, err := seeder.LoadFixtures(cfg.Storage.FixturesFile)
	if err != nil {
		return nil, err
	}

	store, err := storage.New(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	logs := repository.NewXLSXInterviewLogRepository()
	roster := repository.NewXLSXRosterRepository()
	dashboards := repository.NewXLSXDashboardRepository()

	redis := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger.Named("ws"))

	generator := seeder.Runner{Seeders: seeder.Defaults(fx, logs, roster)}
	builder := usecase.NewBuilder(fx, logs, roster, dashboards, logger.Named("builder"))
	svc := usecase.NewDashboardService(store, generator, builder, dashboards, redis, hub, logger.Named("dashboard"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		hub.Run(ctx)
	}()

	logger.Info("container ready",
		zap.String("storage_dir", store.Root()),
		zap.Bool("cache_enabled", redis.Enabled()),
		zap.Int("interview_logs", len(fx.InterviewLogs)),
	)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Store:     store,
		Cache:     redis,
		Hub:       hub,
		Dashboard: svc,
		stopHub:   cancel,
		hubDone:   done,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stopHub != nil {
		c.stopHub()
		<-c.hubDone
	}
	if c.Cache != nil {
		return c.Cache.Close()
	}
	return nil
}
