package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"employee-dashboard/internal/domain/dashboard"
	"employee-dashboard/internal/infrastructure/storage"
	"employee-dashboard/internal/repository"

	"go.uber.org/zap"
)

const snapshotCacheKey = "dashboard:latest"

type Dashboard struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Rows        []dashboard.Row `json:"rows"`
}

type DashboardUsecase interface {
	// Refresh regenerates the fixtures, rebuilds and publishes the dashboard.
	Refresh(ctx context.Context) (Dashboard, error)
	// Latest returns the rows of the most recently published dashboard.
	Latest(ctx context.Context) (Dashboard, error)
	// LatestFile returns the path of the published dashboard spreadsheet.
	LatestFile(ctx context.Context) (string, error)
}

type Generator interface {
	Run(ctx context.Context, dir string) error
}

type SnapshotCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
}

type RebuildNotifier interface {
	NotifyDashboardRebuilt(runID string, rows int, at time.Time)
}

type DashboardService struct {
	store      *storage.Store
	generator  Generator
	builder    *Builder
	dashboards repository.DashboardRepository
	cache      SnapshotCache
	notifier   RebuildNotifier
	logger     *zap.Logger
	now        func() time.Time
}

func NewDashboardService(
	store *storage.Store,
	generator Generator,
	builder *Builder,
	dashboards repository.DashboardRepository,
	cache SnapshotCache,
	notifier RebuildNotifier,
	logger *zap.Logger,
) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		store:      store,
		generator:  generator,
		builder:    builder,
		dashboards: dashboards,
		cache:      cache,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *DashboardService) Refresh(ctx context.Context) (Dashboard, error) {
	start := s.now()

	run, err := s.store.NewRun()
	if err != nil {
		return Dashboard{}, fmt.Errorf("%w: %v", dashboard.ErrStorageUnwritable, err)
	}
	log := s.logger.With(zap.String("run_id", run.ID))
	defer func() {
		if err := run.Close(); err != nil {
			log.Warn("remove run dir failed", zap.Error(err))
		}
	}()

	if err := s.generator.Run(ctx, run.Dir); err != nil {
		log.Error("generate fixtures failed", zap.Error(err))
		return Dashboard{}, fmt.Errorf("generate fixtures: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return Dashboard{}, err
	}

	rows, err := s.builder.Build(ctx, run.Dir)
	if err != nil {
		log.Error("build dashboard failed", zap.Error(err))
		return Dashboard{}, fmt.Errorf("build dashboard: %w", err)
	}

	if err := s.store.Publish(run.Path(DashboardFile), DashboardFile); err != nil {
		log.Error("publish dashboard failed", zap.Error(err))
		return Dashboard{}, fmt.Errorf("%w: %v", dashboard.ErrStorageUnwritable, err)
	}

	out := Dashboard{RunID: run.ID, GeneratedAt: s.now().UTC(), Rows: rows}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, s.snapshotKey(), out); err != nil {
			log.Warn("cache dashboard snapshot failed", zap.Error(err))
		}
	}
	if s.notifier != nil {
		s.notifier.NotifyDashboardRebuilt(out.RunID, len(out.Rows), out.GeneratedAt)
	}

	log.Info("dashboard published",
		zap.Int("rows", len(rows)),
		zap.Duration("duration", s.now().Sub(start)),
	)
	return out, nil
}

// Latest returns the published dashboard. The snapshot cache is consulted
// only while the published file exists.
func (s *DashboardService) Latest(ctx context.Context) (Dashboard, error) {
	path, err := s.LatestFile(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	if s.cache != nil {
		var snap Dashboard
		ok, err := s.cache.GetJSON(ctx, s.snapshotKey(), &snap)
		if err != nil {
			s.logger.Warn("read dashboard snapshot failed", zap.Error(err))
		}
		if ok {
			return snap, nil
		}
	}

	info, err := s.store.Stat(DashboardFile)
	if err != nil {
		return Dashboard{}, mapStorageError(err)
	}
	rows, err := s.dashboards.Load(ctx, path)
	if err != nil {
		return Dashboard{}, mapStorageError(err)
	}
	return Dashboard{GeneratedAt: info.ModTime().UTC(), Rows: rows}, nil
}

func (s *DashboardService) LatestFile(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := s.store.Stat(DashboardFile); err != nil {
		return "", mapStorageError(err)
	}
	return s.store.Path(DashboardFile), nil
}

// snapshotKey scopes the snapshot to this storage root so services sharing
// a Redis instance never read each other's dashboards.
func (s *DashboardService) snapshotKey() string {
	return snapshotCacheKey + ":" + s.store.Root()
}

func mapStorageError(err error) error {
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", dashboard.ErrNotFound, err)
	}
	return err
}
