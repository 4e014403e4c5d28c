package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"fogexplore/pkg/app"
	pkgMigrations "fogexplore/pkg/migrations"

	// Import all migration files to register them
	localMigrations "fogexplore/migrations"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status")
		steps   = flag.Int("steps", 0, "Number of migrations to rollback (for down command)")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Initialized only for the database connection
	appCtx, err := app.InitializeApp("migrate")
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer appCtx.Shutdown(ctx)

	runner := pkgMigrations.NewRunner(appCtx.MongoDB.Database)
	localMigrations.RegisterAll(runner)

	switch *command {
	case "up":
		fmt.Println("Running database migrations...")
		if err := runner.Run(ctx); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		fmt.Println("All migrations completed successfully")

	case "down":
		if *steps == 0 {
			*steps = 1
		}
		fmt.Printf("Rolling back %d migration(s)...\n", *steps)
		if err := runner.Rollback(ctx, *steps); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		fmt.Println("Rollback completed successfully")

	case "status":
		if err := runner.Status(ctx); err != nil {
			log.Fatalf("Failed to get migration status: %v", err)
		}

	default:
		log.Fatalf("Unknown command: %s", *command)
	}
}
