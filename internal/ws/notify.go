package ws

import (
	"encoding/json"
	"time"
)

type DashboardRebuiltEvent struct {
	Type      string `json:"type"`
	RunID     string `json:"run_id"`
	Rows      int    `json:"rows"`
	Timestamp string `json:"timestamp"`
}

// NotifyDashboardRebuilt tells subscribers that a new dashboard was published.
func (h *Hub) NotifyDashboardRebuilt(runID string, rows int, at time.Time) {
	if h == nil {
		return
	}
	b, err := json.Marshal(DashboardRebuiltEvent{
		Type:      "dashboard_rebuilt",
		RunID:     runID,
		Rows:      rows,
		Timestamp: at.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	h.Broadcast(b)
}
