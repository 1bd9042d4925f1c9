package repository

import (
	"context"

	"employee-dashboard/internal/domain/dashboard"
)

type DashboardRepository interface {
	Save(ctx context.Context, path string, rows []dashboard.Row) error
	Load(ctx context.Context, path string) ([]dashboard.Row, error)
}

type XLSXDashboardRepository struct{}

func NewXLSXDashboardRepository() *XLSXDashboardRepository {
	return &XLSXDashboardRepository{}
}

func (r *XLSXDashboardRepository) Save(ctx context.Context, path string, rows []dashboard.Row) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Values())
	}
	return writeTable(path, dashboard.Columns, out)
}

func (r *XLSXDashboardRepository) Load(ctx context.Context, path string) ([]dashboard.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tbl, err := readTable(path, dashboard.Columns)
	if err != nil {
		return nil, err
	}
	col := columnReader(tbl)

	out := make([]dashboard.Row, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		out = append(out, dashboard.Row{
			EmployeeName: col(row, dashboard.ColumnEmployeeName),
			JoinDate:     col(row, dashboard.ColumnJoinDate),
			Role:         col(row, dashboard.ColumnRole),
			Interviewer:  col(row, dashboard.ColumnInterviewer),
		})
	}
	return out, nil
}
