package repository

import (
	"context"

	"employee-dashboard/internal/domain/dashboard"
)

type InterviewLogRepository interface {
	Save(ctx context.Context, path string, records []dashboard.InterviewRecord) error
	Load(ctx context.Context, path string, interviewer string) (dashboard.InterviewLog, error)
}

// interviewKeyColumns are the columns the join depends on; the rest are optional on read.
var interviewKeyColumns = []string{dashboard.ColumnCandidateName, dashboard.ColumnRole}

type XLSXInterviewLogRepository struct{}

func NewXLSXInterviewLogRepository() *XLSXInterviewLogRepository {
	return &XLSXInterviewLogRepository{}
}

func (r *XLSXInterviewLogRepository) Save(ctx context.Context, path string, records []dashboard.InterviewRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec.Values())
	}
	return writeTable(path, dashboard.InterviewColumns, rows)
}

func (r *XLSXInterviewLogRepository) Load(ctx context.Context, path string, interviewer string) (dashboard.InterviewLog, error) {
	if err := ctx.Err(); err != nil {
		return dashboard.InterviewLog{}, err
	}

	tbl, err := readTable(path, interviewKeyColumns)
	if err != nil {
		return dashboard.InterviewLog{}, err
	}
	col := columnReader(tbl)

	out := dashboard.InterviewLog{Interviewer: interviewer, Records: make([]dashboard.InterviewRecord, 0, len(tbl.Rows))}
	for _, row := range tbl.Rows {
		out.Records = append(out.Records, dashboard.InterviewRecord{
			Date:          col(row, dashboard.ColumnDate),
			CandidateName: col(row, dashboard.ColumnCandidateName),
			Role:          col(row, dashboard.ColumnRole),
			Interview:     col(row, dashboard.ColumnInterview),
			Status:        col(row, dashboard.ColumnStatus),
			Remark:        col(row, dashboard.ColumnRemark),
		})
	}
	return out, nil
}
