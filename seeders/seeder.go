// Package seeders fills an empty database with demo users, teams, equipment
// and requests for local development.
package seeders

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/pkg/utils"
)

// Run applies every seeder in dependency order. Seeding a non-empty database
// is a no-op.
func Run(ctx context.Context, db *pgxpool.Pool) error {
	var existing int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&existing); err != nil {
		return fmt.Errorf("checking users table: %w", err)
	}
	if existing > 0 {
		log.Println("  - database already seeded, skipping")
		return nil
	}

	userIDs, err := seedUsers(ctx, db)
	if err != nil {
		return err
	}
	teamIDs, err := seedTeams(ctx, db, userIDs)
	if err != nil {
		return err
	}
	equipmentIDs, err := seedEquipment(ctx, db, teamIDs, userIDs)
	if err != nil {
		return err
	}
	return seedRequests(ctx, db, equipmentIDs, teamIDs, userIDs)
}

type seedUser struct {
	name     string
	email    string
	password string
	role     string
}

var demoUsers = []seedUser{
	{"Admin User", "admin@gearguard.com", "admin123", "Admin"},
	{"John Manager", "manager@gearguard.com", "manager123", "Manager"},
	{"Mike Mechanic", "mike@gearguard.com", "tech123", "Technician"},
	{"Sarah Electrician", "sarah@gearguard.com", "tech123", "Technician"},
	{"David IT", "david@gearguard.com", "tech123", "Technician"},
	{"Lisa Tech", "lisa@gearguard.com", "tech123", "Technician"},
}

func seedUsers(ctx context.Context, db *pgxpool.Pool) ([]uint64, error) {
	log.Println("  - creating users")

	ids := make([]uint64, 0, len(demoUsers))
	for _, u := range demoUsers {
		hash, err := utils.HashPassword(u.password)
		if err != nil {
			return nil, err
		}
		var id uint64
		err = db.QueryRow(ctx,
			"INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id",
			u.name, u.email, hash, u.role,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("seeding user %s: %w", u.email, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type seedTeam struct {
	name        string
	description string
	members     []int
}

var demoTeams = []seedTeam{
	{"Mechanical Team", "Handles all mechanical equipment maintenance", []int{2, 3}},
	{"Electrical Team", "Manages electrical systems and wiring", []int{3, 4}},
	{"IT Support Team", "Maintains computers and network equipment", []int{4, 5}},
	{"General Maintenance", "General facility maintenance", []int{5, 4}},
}

func seedTeams(ctx context.Context, db *pgxpool.Pool, userIDs []uint64) ([]uint64, error) {
	log.Println("  - creating teams")

	ids := make([]uint64, 0, len(demoTeams))
	for _, t := range demoTeams {
		var id uint64
		err := db.QueryRow(ctx,
			"INSERT INTO teams (name, description) VALUES ($1, $2) RETURNING id",
			t.name, t.description,
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("seeding team %s: %w", t.name, err)
		}
		for _, idx := range t.members {
			_, err := db.Exec(ctx,
				"INSERT INTO team_members (team_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
				id, userIDs[idx],
			)
			if err != nil {
				return nil, err
			}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type seedEquipmentItem struct {
	name       string
	serial     string
	department string
	team       int
	employee   string
}

var demoEquipment = []seedEquipmentItem{
	{"CNC Machine #1", "CNC-001", "Production", 0, "John Smith"},
	{"CNC Machine #2", "CNC-002", "Production", 0, "Jane Doe"},
	{"Industrial Printer", "PRINT-001", "Production", 0, ""},
	{"Power Generator", "GEN-001", "Facilities", 1, ""},
	{"HVAC System A", "HVAC-001", "Facilities", 1, ""},
	{"Server Rack #1", "SRV-001", "IT", 2, "Tech Team"},
	{"Network Switch", "NET-001", "IT", 2, ""},
	{"Forklift #1", "FORK-001", "Warehouse", 3, "Bob Wilson"},
	{"Conveyor Belt", "CONV-001", "Warehouse", 0, ""},
	{"Air Compressor", "COMP-001", "Production", 0, ""},
}

func seedEquipment(ctx context.Context, db *pgxpool.Pool, teamIDs, userIDs []uint64) ([]uint64, error) {
	log.Println("  - creating equipment")

	now := time.Now()
	ids := make([]uint64, 0, len(demoEquipment))
	for i, e := range demoEquipment {
		// Each team's first technician doubles as the default technician.
		techIdx := e.team + 2
		if techIdx >= len(userIDs) {
			techIdx = len(userIDs) - 1
		}

		var id uint64
		err := db.QueryRow(ctx, `
			INSERT INTO equipment
				(name, serial_number, department, assigned_employee, team_id,
				 default_technician_id, purchase_date, warranty_expiry, location)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id
		`,
			e.name, e.serial, e.department, e.employee, teamIDs[e.team],
			userIDs[techIdx],
			now.AddDate(-1-i%4, 0, 0),
			now.AddDate(0, i%12-6, 0),
			fmt.Sprintf("Building A, Floor %d", i%3+1),
		).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("seeding equipment %s: %w", e.serial, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

var demoSubjects = []string{
	"Oil leak detected", "Unusual noise during operation", "Equipment not starting",
	"Routine inspection", "Quarterly maintenance", "Sensor calibration",
	"Belt replacement needed", "Electrical short circuit", "Overheating issue",
	"Software update required", "Preventive checkup", "Parts replacement",
}

func seedRequests(ctx context.Context, db *pgxpool.Pool, equipmentIDs, teamIDs, userIDs []uint64) error {
	log.Println("  - creating maintenance requests")

	now := time.Now()
	statuses := []string{"New", "In Progress", "Repaired", "New", "In Progress"}

	for i := 0; i < 20; i++ {
		subject := demoSubjects[i%len(demoSubjects)]
		equipmentIdx := i % len(demoEquipment)
		teamID := teamIDs[demoEquipment[equipmentIdx].team]
		status := statuses[i%len(statuses)]
		requestType := "Corrective"
		if i%3 == 0 {
			requestType = "Preventive"
		}

		var technicianID interface{}
		var completedAt interface{}
		var duration interface{}
		if status != "New" {
			technicianID = userIDs[2+i%4]
		}
		if status == "Repaired" {
			completedAt = now.AddDate(0, 0, -(i % 10))
			duration = float64(i%8) + 0.5
		}

		var scheduled interface{}
		if requestType == "Preventive" {
			scheduled = now.AddDate(0, 0, i%21-3)
		}

		_, err := db.Exec(ctx, `
			INSERT INTO maintenance_requests
				(subject, description, request_type, equipment_id, team_id,
				 assigned_technician_id, scheduled_date, due_date, duration, status,
				 created_by_id, created_at, completed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`,
			subject,
			"Auto-generated demo request: "+subject,
			requestType,
			equipmentIDs[equipmentIdx],
			teamID,
			technicianID,
			scheduled,
			now.AddDate(0, 0, i%14-4),
			duration,
			status,
			userIDs[1],
			now.AddDate(0, 0, -(i % 28)),
			completedAt,
		)
		if err != nil {
			return fmt.Errorf("seeding request %q: %w", subject, err)
		}
	}
	return nil
}
