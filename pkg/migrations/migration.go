package migrations

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Migration represents an applied database migration record
type Migration struct {
	Version     string    `bson:"version"`     // e.g. "001_create_profiles_indexes"
	Description string    `bson:"description"` // Human-readable description
	AppliedAt   time.Time `bson:"applied_at"`  // When the migration was applied
}

// MigrationFunc defines a migration function signature
type MigrationFunc func(ctx context.Context, db *mongo.Database) error

// RegisteredMigration holds migration metadata and functions
type RegisteredMigration struct {
	Version     string
	Description string
	Up          MigrationFunc // Apply migration
	Down        MigrationFunc // Rollback migration (optional)
}

// Runner manages database migrations
type Runner struct {
	db         *mongo.Database
	collection *mongo.Collection
	migrations []RegisteredMigration
}

// NewRunner creates a new migration runner
func NewRunner(db *mongo.Database) *Runner {
	return &Runner{
		db:         db,
		collection: db.Collection("_migrations"),
		migrations: make([]RegisteredMigration, 0),
	}
}

// Register adds a migration to the runner
func (r *Runner) Register(migration RegisteredMigration) {
	r.migrations = append(r.migrations, migration)
}

// Run executes all pending migrations in registration order
func (r *Runner) Run(ctx context.Context) error {
	if err := r.ensureMigrationsIndex(ctx); err != nil {
		return fmt.Errorf("failed to create migrations index: %w", err)
	}

	applied, err := r.appliedVersions(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, migration := range r.migrations {
		if applied[migration.Version] {
			continue
		}

		fmt.Printf("Running migration: %s - %s\n", migration.Version, migration.Description)

		if err := migration.Up(ctx, r.db); err != nil {
			return fmt.Errorf("migration %s failed: %w", migration.Version, err)
		}

		record := Migration{
			Version:     migration.Version,
			Description: migration.Description,
			AppliedAt:   time.Now().UTC(),
		}
		if _, err := r.collection.InsertOne(ctx, record); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", migration.Version, err)
		}

		fmt.Printf("Migration %s completed\n", migration.Version)
	}

	return nil
}

// Rollback rolls back the last n applied migrations
func (r *Runner) Rollback(ctx context.Context, steps int) error {
	var records []Migration
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "applied_at", Value: -1}}).SetLimit(int64(steps)))
	if err != nil {
		return fmt.Errorf("failed to list applied migrations: %w", err)
	}
	if err := cursor.All(ctx, &records); err != nil {
		return err
	}

	byVersion := make(map[string]RegisteredMigration, len(r.migrations))
	for _, m := range r.migrations {
		byVersion[m.Version] = m
	}

	for _, record := range records {
		migration, ok := byVersion[record.Version]
		if !ok || migration.Down == nil {
			return fmt.Errorf("migration %s has no rollback", record.Version)
		}

		fmt.Printf("Rolling back migration: %s\n", record.Version)

		if err := migration.Down(ctx, r.db); err != nil {
			return fmt.Errorf("rollback of %s failed: %w", record.Version, err)
		}
		if _, err := r.collection.DeleteOne(ctx, bson.M{"version": record.Version}); err != nil {
			return fmt.Errorf("failed to remove migration record %s: %w", record.Version, err)
		}
	}

	return nil
}

// Status prints applied and pending migrations
func (r *Runner) Status(ctx context.Context) error {
	applied, err := r.appliedVersions(ctx)
	if err != nil {
		return err
	}

	for _, migration := range r.migrations {
		state := "pending"
		if applied[migration.Version] {
			state = "applied"
		}
		fmt.Printf("%-10s %s - %s\n", state, migration.Version, migration.Description)
	}
	return nil
}

func (r *Runner) appliedVersions(ctx context.Context) (map[string]bool, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var records []Migration
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(records))
	for _, m := range records {
		applied[m.Version] = true
	}
	return applied, nil
}

func (r *Runner) ensureMigrationsIndex(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "version", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
