package main

import (
	"context"
	"log"

	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	"gearguard/seeders"
)

func main() {
	cfg := config.New()
	ctx := context.Background()

	db, err := postgresql.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("connecting to postgres: %v", err)
	}
	defer db.Close()

	log.Println("seeding database")
	if err := seeders.Run(ctx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("done")
	log.Println("  admin:      admin@gearguard.com / admin123")
	log.Println("  manager:    manager@gearguard.com / manager123")
	log.Println("  technician: mike@gearguard.com / tech123")
}
