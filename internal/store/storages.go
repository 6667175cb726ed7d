package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/migrations"
	"github.com/MKhiriev/go-user-registry/models"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
}

// seedUsers are inserted into a freshly created store so the service starts
// with a small, predictable data set.
var seedUsers = []models.User{
	{Name: "Alice", Email: "alice@example.com"},
	{Name: "Bob", Email: "bob@example.com"},
}

// NewStorages constructs the repository set for the given storage
// configuration. An empty DSN selects the slice-backed store; otherwise the
// DSN is opened as a SQLite database (typically ":memory:"), migrated, and
// wrapped in the SQL-backed store. Both backends are seeded with the same
// two initial records.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var repo UserRepository

	if cfg.DB.DSN == "" {
		repo = NewMemoryUserRepository(log)
	} else {
		db, err := sql.Open("sqlite3", cfg.DB.DSN)
		if err != nil {
			return nil, fmt.Errorf("error opening sqlite db: %w", err)
		}
		if err := migrations.Migrate(db); err != nil {
			return nil, err
		}
		repo = NewSQLiteUserRepository(db, log)
	}

	if err := seed(repo); err != nil {
		return nil, fmt.Errorf("error seeding user store: %w", err)
	}

	return &Storages{UserRepository: repo}, nil
}

// seed inserts the initial records through the repository itself so id
// assignment follows the same max+1 rule as regular creates.
func seed(repo UserRepository) error {
	ctx := context.Background()

	existing, err := repo.List(ctx, 0, 1)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, user := range seedUsers {
		if _, err := repo.Insert(ctx, user); err != nil {
			return err
		}
	}

	return nil
}
