package store

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the authoritative collection of user records. Two
// implementations exist: an ordered in-memory slice (default) and an
// in-memory SQLite database. Both uphold the same contract:
//
//   - ids are assigned by Insert as max(existing ids)+1, or 1 for an empty
//     store;
//   - records are returned in insertion order (equivalently, ascending id);
//   - List clamps negative offsets and non-positive limits to an empty
//     result instead of erroring;
//   - every method is safe for concurrent use through a single lock per
//     backend.
type UserRepository interface {
	// List returns at most limit users starting at offset, in store order.
	List(ctx context.Context, offset, limit int) ([]models.User, error)

	// FindByID returns the user with the given id or ErrUserNotFound.
	FindByID(ctx context.Context, id int64) (models.User, error)

	// Insert assigns the next id to user, appends it, and returns the
	// stored entity. The incoming ID field is ignored.
	Insert(ctx context.Context, user models.User) (models.User, error)

	// Update overwrites the name and email of the user with the given id,
	// leaving the id untouched, and returns the updated entity.
	// Returns ErrUserNotFound if no such user exists.
	Update(ctx context.Context, id int64, name, email string) (models.User, error)

	// Remove erases the user with the given id and returns the removed
	// entity. Returns ErrUserNotFound if no such user exists.
	Remove(ctx context.Context, id int64) (models.User, error)
}
