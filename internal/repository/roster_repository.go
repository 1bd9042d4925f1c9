package repository

import (
	"context"

	"employee-dashboard/internal/domain/dashboard"
)

type RosterRepository interface {
	Save(ctx context.Context, path string, entries []dashboard.RosterEntry) error
	Load(ctx context.Context, path string) ([]dashboard.RosterEntry, error)
}

var rosterRequiredColumns = []string{dashboard.ColumnEmployeeName, dashboard.ColumnJoinDate, dashboard.ColumnRole}

type XLSXRosterRepository struct{}

func NewXLSXRosterRepository() *XLSXRosterRepository {
	return &XLSXRosterRepository{}
}

func (r *XLSXRosterRepository) Save(ctx context.Context, path string, entries []dashboard.RosterEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.Values())
	}
	return writeTable(path, dashboard.RosterColumns, rows)
}

func (r *XLSXRosterRepository) Load(ctx context.Context, path string) ([]dashboard.RosterEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tbl, err := readTable(path, rosterRequiredColumns)
	if err != nil {
		return nil, err
	}
	col := columnReader(tbl)

	out := make([]dashboard.RosterEntry, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		out = append(out, dashboard.RosterEntry{
			EmployeeName: col(row, dashboard.ColumnEmployeeName),
			JoinDate:     col(row, dashboard.ColumnJoinDate),
			Role:         col(row, dashboard.ColumnRole),
			DOB:          col(row, dashboard.ColumnDOB),
			IDCard:       col(row, dashboard.ColumnIDCard),
			Remark:       col(row, dashboard.ColumnRemark),
		})
	}
	return out, nil
}
