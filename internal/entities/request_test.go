package entities

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
)

func TestRequestStatus(t *testing.T) {
	t.Run("parse accepts the four statuses", func(t *testing.T) {
		for _, s := range []string{"New", "In Progress", "Repaired", "Scrap"} {
			parsed, err := ParseRequestStatus(s)
			assert.NoError(t, err)
			assert.Equal(t, RequestStatus(s), parsed)
		}
	})

	t.Run("parse rejects unknown and mis-cased values", func(t *testing.T) {
		for _, s := range []string{"", "new", "Done", "IN PROGRESS"} {
			_, err := ParseRequestStatus(s)
			assert.Error(t, err, s)
		}
	})

	t.Run("only Repaired and Scrap are terminal", func(t *testing.T) {
		assert.False(t, StatusNew.IsTerminal())
		assert.False(t, StatusInProgress.IsTerminal())
		assert.True(t, StatusRepaired.IsTerminal())
		assert.True(t, StatusScrap.IsTerminal())
	})
}

func TestMaintenanceRequest_IsOverdueAt(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 30, 0, 0, time.UTC)

	t.Run("due yesterday and still open", func(t *testing.T) {
		r := &MaintenanceRequest{Status: StatusNew, DueDate: null.TimeFrom(now.AddDate(0, 0, -1))}
		assert.True(t, r.IsOverdueAt(now))
	})

	t.Run("due later today is not overdue", func(t *testing.T) {
		r := &MaintenanceRequest{
			Status:  StatusInProgress,
			DueDate: null.TimeFrom(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)),
		}
		assert.False(t, r.IsOverdueAt(now))
	})

	t.Run("no due date", func(t *testing.T) {
		r := &MaintenanceRequest{Status: StatusNew}
		assert.False(t, r.IsOverdueAt(now))
	})

	t.Run("terminal requests are never overdue", func(t *testing.T) {
		r := &MaintenanceRequest{Status: StatusRepaired, DueDate: null.TimeFrom(now.AddDate(0, 0, -30))}
		assert.False(t, r.IsOverdueAt(now))
		r.Status = StatusScrap
		assert.False(t, r.IsOverdueAt(now))
	})
}

func TestMaintenanceRequest_PriorityAt(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 30, 0, 0, time.UTC)

	t.Run("overdue wins regardless of type", func(t *testing.T) {
		r := &MaintenanceRequest{
			Status:      StatusNew,
			RequestType: TypePreventive,
			DueDate:     null.TimeFrom(now.AddDate(0, 0, -2)),
		}
		assert.Equal(t, PriorityHigh, r.PriorityAt(now))
	})

	t.Run("corrective is medium", func(t *testing.T) {
		r := &MaintenanceRequest{Status: StatusNew, RequestType: TypeCorrective}
		assert.Equal(t, PriorityMedium, r.PriorityAt(now))
	})

	t.Run("preventive is low", func(t *testing.T) {
		r := &MaintenanceRequest{Status: StatusNew, RequestType: TypePreventive}
		assert.Equal(t, PriorityLow, r.PriorityAt(now))
	})
}
