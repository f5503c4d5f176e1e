package transport

// Metric pairs a current total with its month-over-month growth percentage.
type Metric struct {
	Count         int     `json:"count"`
	GrowthPercent float64 `json:"growthPercent"`
}

// TaskSummary partitions the task total by workflow state. Overdue is
// derived from due dates and overlaps the status buckets.
type TaskSummary struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
}

// DashboardResponse is the payload for GET /api/v1/dashboard.
type DashboardResponse struct {
	Agents  Metric      `json:"agents"`
	Clients Metric      `json:"clients"`
	Tasks   Metric      `json:"tasks"`
	Summary TaskSummary `json:"taskSummary"`
}
