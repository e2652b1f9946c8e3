package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go-westeros/pkg/app"
	pkgMigrations "go-westeros/pkg/migrations"

	// Import all migration files to register them
	localMigrations "go-westeros/migrations"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		steps   = flag.Int("steps", 0, "Number of migrations to rollback (for down command)")
		name    = flag.String("name", "", "Migration name (for create command)")
		dryRun  = flag.Bool("dry-run", false, "Show what would be done without executing")
	)

	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

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
		if *dryRun {
			fmt.Println("DRY RUN MODE - No changes will be made")
			if err := runner.Status(ctx); err != nil {
				log.Fatalf("Failed to show status: %v", err)
			}
		} else {
			if err := runner.Run(ctx); err != nil {
				log.Fatalf("Migration failed: %v", err)
			}
			fmt.Println("All migrations completed successfully")
		}

	case "down":
		if *steps == 0 {
			*steps = 1
		}
		fmt.Printf("Rolling back %d migration(s)...\n", *steps)
		if *dryRun {
			fmt.Println("DRY RUN MODE - No changes will be made")
			if err := runner.Status(ctx); err != nil {
				log.Fatalf("Failed to show status: %v", err)
			}
		} else {
			if err := runner.Rollback(ctx, *steps); err != nil {
				log.Fatalf("Rollback failed: %v", err)
			}
			fmt.Println("Rollback completed successfully")
		}

	case "status":
		if err := runner.Status(ctx); err != nil {
			log.Fatalf("Failed to get migration status: %v", err)
		}

	case "create":
		if *name == "" {
			log.Fatal("Migration name is required for create command")
		}
		if err := createMigration(*name); err != nil {
			log.Fatalf("Failed to create migration: %v", err)
		}

	default:
		log.Fatalf("Unknown command: %s", *command)
	}
}

// createMigration creates a new migration file template
func createMigration(name string) error {
	version := fmt.Sprintf("%03d", getNextVersionNumber())
	filename := fmt.Sprintf("migrations/%s_%s.go", version, name)

	template := `package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	Register(Migration{
		Version:     "%s_%s",
		Description: "TODO: Add description",
		Up:          up%s,
		Down:        down%s,
	})
}

func up%s(ctx context.Context, db *mongo.Database) error {
	// TODO: Implement migration
	return nil
}

func down%s(ctx context.Context, db *mongo.Database) error {
	// TODO: Implement rollback
	return nil
}
`

	content := fmt.Sprintf(template, version, name, version, version, version, version)

	if err := os.MkdirAll("migrations", 0755); err != nil {
		return err
	}

	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("migration file %s already exists", filename)
	}

	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return err
	}

	fmt.Printf("Created migration file: %s\n", filename)
	return nil
}

// getNextVersionNumber determines the next migration version number
func getNextVersionNumber() int {
	entries, err := os.ReadDir("migrations")
	if err != nil {
		return 1
	}

	maxVersion := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		var version int
		_, err := fmt.Sscanf(entry.Name(), "%03d_", &version)
		if err == nil && version > maxVersion {
			maxVersion = version
		}
	}

	return maxVersion + 1
}
