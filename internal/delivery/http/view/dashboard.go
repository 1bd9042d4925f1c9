package view

import (
	"bytes"
	_ "embed"
	"html/template"

	"employee-dashboard/internal/domain/dashboard"
)

//go:embed dashboard.html
var dashboardHTML string

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

type dashboardPage struct {
	Title       string
	Columns     []string
	Rows        [][]string
	DownloadURL string
}

// RenderDashboard renders rows as an HTML table with a download link.
func RenderDashboard(rows []dashboard.Row, downloadURL string) ([]byte, error) {
	page := dashboardPage{
		Title:       "Employee Dashboard",
		Columns:     dashboard.Columns,
		Rows:        make([][]string, 0, len(rows)),
		DownloadURL: downloadURL,
	}
	for _, r := range rows {
		page.Rows = append(page.Rows, r.Values())
	}

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
