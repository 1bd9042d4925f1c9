package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"employee-dashboard/internal/domain/dashboard"
	"employee-dashboard/internal/infrastructure/spreadsheet"
)

func writeTable(path string, header []string, rows [][]string) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*.xlsx")
	if err != nil {
		return fmt.Errorf("%w: %v", dashboard.ErrStorageUnwritable, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := spreadsheet.Write(tmp, header, rows); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %s: %v", dashboard.ErrStorageUnwritable, filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", dashboard.ErrStorageUnwritable, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", dashboard.ErrStorageUnwritable, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %v", dashboard.ErrStorageUnwritable, err)
	}
	return nil
}

// readTable loads path and checks that every required column is present.
func readTable(path string, required []string) (spreadsheet.Table, error) {
	dataset := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		return spreadsheet.Table{}, fmt.Errorf("open %s: %w", dataset, err)
	}
	defer f.Close()

	tbl, err := spreadsheet.Read(f)
	if err != nil {
		if errors.Is(err, spreadsheet.ErrEmptySheet) {
			return spreadsheet.Table{}, &dashboard.MissingColumnError{Dataset: dataset, Column: required[0]}
		}
		return spreadsheet.Table{}, fmt.Errorf("read %s: %w", dataset, err)
	}

	if _, missing := tbl.Index(required); missing != "" {
		return spreadsheet.Table{}, &dashboard.MissingColumnError{Dataset: dataset, Column: missing}
	}
	return tbl, nil
}

// columnReader reads cells by header name; absent optional columns read as "".
func columnReader(tbl spreadsheet.Table) func(row []string, name string) string {
	return func(row []string, name string) string {
		i, ok := tbl.Lookup(name)
		if !ok {
			return ""
		}
		return spreadsheet.Cell(row, i)
	}
}
