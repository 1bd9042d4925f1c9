package seeder

import (
	"context"
	"fmt"
	"path/filepath"

	"employee-dashboard/internal/repository"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, dir string) error
}

type Runner struct {
	Seeders []Seeder
}

// Run writes every dataset into dir, overwriting what is there.
func (r Runner) Run(ctx context.Context, dir string) error {
	if dir == "" {
		return fmt.Errorf("empty seed dir")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Run(ctx, dir); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}

type InterviewLogSeeder struct {
	Fixture InterviewLogFixture
	Repo    repository.InterviewLogRepository
}

func (s InterviewLogSeeder) Name() string {
	return s.Fixture.File
}

func (s InterviewLogSeeder) Run(ctx context.Context, dir string) error {
	return s.Repo.Save(ctx, filepath.Join(dir, s.Fixture.File), s.Fixture.Records)
}

type RosterSeeder struct {
	Fixture RosterFixture
	Repo    repository.RosterRepository
}

func (s RosterSeeder) Name() string {
	return s.Fixture.File
}

func (s RosterSeeder) Run(ctx context.Context, dir string) error {
	return s.Repo.Save(ctx, filepath.Join(dir, s.Fixture.File), s.Fixture.Entries)
}

func Defaults(fx Fixtures, logs repository.InterviewLogRepository, roster repository.RosterRepository) []Seeder {
	out := make([]Seeder, 0, len(fx.InterviewLogs)+1)
	for _, l := range fx.InterviewLogs {
		out = append(out, InterviewLogSeeder{Fixture: l, Repo: logs})
	}
	return append(out, RosterSeeder{Fixture: fx.Roster, Repo: roster})
}
