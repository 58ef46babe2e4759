package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type TeamMember struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type Team struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	Description null.String `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
	Members     []TeamMember `json:"members,omitempty"`
}

// TeamStats is the dashboard row for one team.
type TeamStats struct {
	TeamID       uint64 `json:"team_id"`
	Name         string `json:"name"`
	MemberCount  int    `json:"members"`
	OpenRequests int    `json:"open_requests"`
}
