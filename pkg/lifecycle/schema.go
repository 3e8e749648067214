// Package lifecycle defines the contracts for database lifecycle
// management. Implementations live in internal/ioschema.
package lifecycle

import (
	"context"

	"github.com/gridstats/pbpkit/pkg/config"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate for both initial schema creation and later
// migrations. Schema management is idempotent - safe to run multiple
// times.
type SchemaManager interface {
	// Create creates the initial database schema using GORM
	// AutoMigrate. If tables already exist, behavior depends on user
	// confirmation via DropAllTables.
	Create(ctx context.Context, cfg *config.Config) error

	// Migrate updates the database schema to the latest version using
	// GORM AutoMigrate. GORM tracks schema versions automatically.
	Migrate(ctx context.Context, cfg *config.Config) error
}
