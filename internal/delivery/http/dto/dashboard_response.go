package dto

import "time"

type DashboardRowResponse struct {
	EmployeeName string `json:"employee_name"`
	JoinDate     string `json:"join_date"`
	Role         string `json:"role"`
	Interviewer  string `json:"interviewer"`
}

type DashboardResponse struct {
	RunID       string                 `json:"run_id,omitempty"`
	GeneratedAt time.Time              `json:"generated_at"`
	Columns     []string               `json:"columns"`
	Rows        []DashboardRowResponse `json:"rows"`
}

type HealthResponse struct {
	Status     string    `json:"status"`
	Cache      string    `json:"cache"`
	WSClients  int       `json:"ws_clients"`
	ServerTime time.Time `json:"server_time"`
}
