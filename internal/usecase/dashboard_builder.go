package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"employee-dashboard/internal/domain/dashboard"
	"employee-dashboard/internal/repository"
	"employee-dashboard/internal/seeder"

	"go.uber.org/zap"
)

// DashboardFile is the published name of the merged spreadsheet.
const DashboardFile = dashboard.FileName

// Builder merges the datasets found in a directory into a dashboard file
// written to the same directory.
type Builder struct {
	sources    []seeder.Source
	rosterFile string
	logs       repository.InterviewLogRepository
	roster     repository.RosterRepository
	dashboards repository.DashboardRepository
	logger     *zap.Logger
}

func NewBuilder(
	fx seeder.Fixtures,
	logs repository.InterviewLogRepository,
	roster repository.RosterRepository,
	dashboards repository.DashboardRepository,
	logger *zap.Logger,
) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		sources:    fx.Sources(),
		rosterFile: fx.Roster.File,
		logs:       logs,
		roster:     roster,
		dashboards: dashboards,
		logger:     logger,
	}
}

func (b *Builder) Build(ctx context.Context, dir string) ([]dashboard.Row, error) {
	logs := make([]dashboard.InterviewLog, 0, len(b.sources))
	for _, src := range b.sources {
		l, err := b.logs.Load(ctx, filepath.Join(dir, src.File), src.Interviewer)
		if err != nil {
			return nil, fmt.Errorf("load interview log: %w", err)
		}
		logs = append(logs, l)
	}

	roster, err := b.roster.Load(ctx, filepath.Join(dir, b.rosterFile))
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	rows, err := dashboard.Merge(roster, logs...)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("dashboard merged",
		zap.Int("roster", len(roster)),
		zap.Int("interview_logs", len(logs)),
		zap.Int("rows", len(rows)),
	)

	if err := b.dashboards.Save(ctx, filepath.Join(dir, DashboardFile), rows); err != nil {
		return nil, fmt.Errorf("save dashboard: %w", err)
	}
	return rows, nil
}
