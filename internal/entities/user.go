package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type User struct {
	ID               uint64      `json:"id"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	PasswordHash     string      `json:"-"`
	Role             Role        `json:"role"`
	ResetToken       null.String `json:"-"`
	ResetTokenExpiry null.Time   `json:"-"`
	CreatedAt        time.Time   `json:"created_at"`

	// TeamIDs is populated by queries that join team_members; zero value means
	// "not loaded", not "no teams".
	TeamIDs []uint64 `json:"team_ids,omitempty"`
}
