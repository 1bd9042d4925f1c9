package repository

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"employee-dashboard/internal/domain/dashboard"
	"employee-dashboard/internal/infrastructure/spreadsheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRaw(t *testing.T, path string, header []string, rows [][]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, spreadsheet.Write(f, header, rows))
}

func TestInterviewLogRepository_SaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "Daily_report_Pattama.xlsx")
	repo := NewXLSXInterviewLogRepository()

	records := []dashboard.InterviewRecord{
		{Date: "15-Jan-2025", CandidateName: "Mr.A", Role: "Data Analyst", Interview: "Yes", Status: "Pass"},
		{Date: "15-Jan-2025", CandidateName: "Mr.B", Role: "Web Developer", Interview: "Yes", Status: "Fail", Remark: "no show"},
	}
	require.NoError(t, repo.Save(ctx, path, records))

	log, err := repo.Load(ctx, path, "Pattama Sooksan")
	require.NoError(t, err)
	assert.Equal(t, "Pattama Sooksan", log.Interviewer)
	assert.Equal(t, records, log.Records)
}

func TestInterviewLogRepository_ColumnOrderIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.xlsx")
	writeRaw(t, path, []string{"Role", "Status", "Candidate Name"}, [][]string{{"Data Analyst", "Pass", "Mr.A"}})

	log, err := NewXLSXInterviewLogRepository().Load(context.Background(), path, "X")
	require.NoError(t, err)
	require.Len(t, log.Records, 1)
	assert.Equal(t, "Mr.A", log.Records[0].CandidateName)
	assert.Equal(t, "Data Analyst", log.Records[0].Role)
	assert.Equal(t, "Pass", log.Records[0].Status)
	assert.Empty(t, log.Records[0].Date)
}

func TestInterviewLogRepository_MissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.xlsx")
	writeRaw(t, path, []string{"Date", "Candidate", "Role"}, [][]string{{"d", "Mr.A", "Data Analyst"}})

	_, err := NewXLSXInterviewLogRepository().Load(context.Background(), path, "X")
	require.ErrorIs(t, err, dashboard.ErrMissingColumn)

	var mc *dashboard.MissingColumnError
	require.ErrorAs(t, err, &mc)
	assert.Equal(t, "Candidate Name", mc.Column)
	assert.Equal(t, "log.xlsx", mc.Dataset)
}

func TestRosterRepository_SaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "New_Employees.xlsx")
	repo := NewXLSXRosterRepository()

	entries := []dashboard.RosterEntry{
		{EmployeeName: "Mr.A", JoinDate: "3-Feb-2025", Role: "Data Analyst", DOB: "01-01-2000", IDCard: "1-1111-11111-11-1"},
	}
	require.NoError(t, repo.Save(ctx, path, entries))

	got, err := repo.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestRosterRepository_MissingJoinDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "New_Employees.xlsx")
	writeRaw(t, path, []string{"Employee Name", "Role"}, [][]string{{"Mr.A", "Data Analyst"}})

	_, err := NewXLSXRosterRepository().Load(context.Background(), path)
	require.ErrorIs(t, err, dashboard.ErrMissingColumn)
	assert.Contains(t, err.Error(), "Join Date")
}

func TestRosterRepository_PaddedHeaderIsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "New_Employees.xlsx")
	writeRaw(t, path, []string{"Employee Name", "Join Date ", "Role"}, [][]string{{"Mr.A", "3-Feb-2025", "Data Analyst"}})

	_, err := NewXLSXRosterRepository().Load(context.Background(), path)
	var mc *dashboard.MissingColumnError
	require.ErrorAs(t, err, &mc)
	assert.Equal(t, "Join Date", mc.Column)
}

func TestRosterRepository_WhitespaceJoinDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "New_Employees.xlsx")
	writeRaw(t, path, []string{"Employee Name", "Join Date", "Role"}, [][]string{{"Mr.A", " ", "Data Analyst"}})

	got, err := NewXLSXRosterRepository().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, " ", got[0].JoinDate)
}

func TestDashboardRepository_SaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "Employee_Dashboard.xlsx")
	repo := NewXLSXDashboardRepository()

	rows := []dashboard.Row{
		{EmployeeName: "Mr.A", JoinDate: "3-Feb-2025", Role: "Data Analyst", Interviewer: "Pattama Sooksan"},
	}
	require.NoError(t, repo.Save(ctx, path, rows))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	tbl, err := spreadsheet.Read(f)
	require.NoError(t, err)
	assert.Equal(t, dashboard.Columns, tbl.Header)

	got, err := repo.Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestDashboardRepository_LoadMissingFile(t *testing.T) {
	_, err := NewXLSXDashboardRepository().Load(context.Background(), filepath.Join(t.TempDir(), "none.xlsx"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSave_UnwritableDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.xlsx")
	err := NewXLSXDashboardRepository().Save(context.Background(), path, nil)
	require.ErrorIs(t, err, dashboard.ErrStorageUnwritable)
}

func TestSave_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewXLSXRosterRepository().Save(ctx, filepath.Join(t.TempDir(), "r.xlsx"), nil)
	require.ErrorIs(t, err, context.Canceled)
}
