package dto

type MonthlyTeamStatsDTO struct {
	TeamID        uint64  `json:"team_id"`
	TeamName      string  `json:"team_name"`
	TotalRequests int     `json:"total_requests"`
	Completed     int     `json:"completed"`
	TotalHours    float64 `json:"total_hours"`
}

type MonthlyReportDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	TeamReports []MonthlyTeamStatsDTO `json:"team_reports"`

	TotalRequests     int     `json:"total_requests"`
	CompletedRequests int     `json:"completed_requests"`
	TotalDuration     float64 `json:"total_duration"`
}
