package seeder

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"employee-dashboard/internal/domain/dashboard"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type Fixtures struct {
	InterviewLogs []InterviewLogFixture `yaml:"interview_logs"`
	Roster        RosterFixture         `yaml:"roster"`
}

type InterviewLogFixture struct {
	Interviewer string                      `yaml:"interviewer"`
	File        string                      `yaml:"file"`
	Records     []dashboard.InterviewRecord `yaml:"records"`
}

type RosterFixture struct {
	File    string                  `yaml:"file"`
	Entries []dashboard.RosterEntry `yaml:"entries"`
}

// LoadFixtures reads fixtures from path, or the built-in sample data when path is empty.
func LoadFixtures(path string) (Fixtures, error) {
	b := defaultFixtures
	if strings.TrimSpace(path) != "" {
		var err error
		b, err = os.ReadFile(path)
		if err != nil {
			return Fixtures{}, fmt.Errorf("fixtures: read file %s: %w", path, err)
		}
	}
	return ParseFixtures(b)
}

func ParseFixtures(b []byte) (Fixtures, error) {
	var fx Fixtures
	if err := yaml.Unmarshal(b, &fx); err != nil {
		return Fixtures{}, fmt.Errorf("fixtures: parse yaml: %w", err)
	}
	if err := fx.validate(); err != nil {
		return Fixtures{}, err
	}
	return fx, nil
}

func (f Fixtures) validate() error {
	if len(f.InterviewLogs) == 0 {
		return fmt.Errorf("fixtures: interview_logs must not be empty")
	}
	seen := make(map[string]bool)
	for i, l := range f.InterviewLogs {
		if strings.TrimSpace(l.Interviewer) == "" {
			return fmt.Errorf("fixtures: interview_logs[%d].interviewer must be set", i)
		}
		if err := checkFileName(l.File); err != nil {
			return fmt.Errorf("fixtures: interview_logs[%d].file: %w", i, err)
		}
		if seen[l.File] {
			return fmt.Errorf("fixtures: duplicate file %s", l.File)
		}
		seen[l.File] = true
	}
	if err := checkFileName(f.Roster.File); err != nil {
		return fmt.Errorf("fixtures: roster.file: %w", err)
	}
	if seen[f.Roster.File] {
		return fmt.Errorf("fixtures: duplicate file %s", f.Roster.File)
	}
	return nil
}

// checkFileName accepts a bare file name inside the run directory that does
// not collide with the published dashboard.
func checkFileName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.New("must be set")
	case name == "." || name == "..":
		return fmt.Errorf("%q is not a file name", name)
	case strings.ContainsAny(name, `/\`) || filepath.Base(name) != name:
		return fmt.Errorf("%q must not contain a path separator", name)
	case strings.EqualFold(name, dashboard.FileName):
		return fmt.Errorf("%q is reserved for the dashboard", name)
	}
	return nil
}

// Sources lists the interview log files with the label stamped onto their records.
func (f Fixtures) Sources() []Source {
	out := make([]Source, 0, len(f.InterviewLogs))
	for _, l := range f.InterviewLogs {
		out = append(out, Source{Interviewer: l.Interviewer, File: l.File})
	}
	return out
}

type Source struct {
	Interviewer string
	File        string
}
