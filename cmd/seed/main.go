package main

import (
	"context"
	"flag"
	"log"
	"time"

	"campus-link/internal/app"
	"campus-link/internal/config"
	"campus-link/internal/database/migration"
	"campus-link/internal/database/seeder"
)

func main() {
	migrationsDir := flag.String("migrations", "migrations", "migrations directory")
	skipSeed := flag.Bool("skip-seed", false, "apply migrations only")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()

	r := migration.Runner{Dir: *migrationsDir}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Printf("migrations applied | dir=%s", *migrationsDir)

	if *skipSeed {
		return
	}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer seedCancel()

	runner := seeder.Runner{Seeders: []seeder.Seeder{
		seeder.ProfileSeeder{},
		seeder.ProjectSeeder{},
	}}
	if err := runner.Run(seedCtx, c.DB); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Printf("seed complete")
}
