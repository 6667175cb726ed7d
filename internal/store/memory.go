package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
)

type memoryUserRepository struct {
	logger *logger.Logger

	mu    sync.Mutex
	users []models.User
}

// NewMemoryUserRepository returns the default slice-backed implementation of
// [UserRepository]. All records live in process memory and are discarded on
// exit.
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("memory UserRepository created")
	return &memoryUserRepository{
		logger: logger,
		users:  make([]models.User, 0),
	}
}

func (r *memoryUserRepository) List(_ context.Context, offset, limit int) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// negative offsets (page <= 0) and non-positive limits yield an empty
	// slice instead of panicking on out-of-range indexing
	if offset < 0 || limit <= 0 || offset >= len(r.users) {
		return []models.User{}, nil
	}

	end := offset + limit
	if end > len(r.users) {
		end = len(r.users)
	}

	page := make([]models.User, end-offset)
	copy(page, r.users[offset:end])

	return page, nil
}

func (r *memoryUserRepository) FindByID(_ context.Context, id int64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (r *memoryUserRepository) Insert(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID()
	r.users = append(r.users, user)

	return user, nil
}

func (r *memoryUserRepository) Update(_ context.Context, id int64, name, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Name = name
			r.users[i].Email = email
			return r.users[i], nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (r *memoryUserRepository) Remove(_ context.Context, id int64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			removed := r.users[i]
			r.users = append(r.users[:i], r.users[i+1:]...)
			return removed, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

// nextID computes max(existing ids)+1, or 1 for an empty store.
// Caller must hold r.mu.
func (r *memoryUserRepository) nextID() int64 {
	var maxID int64
	for _, user := range r.users {
		if user.ID > maxID {
			maxID = user.ID
		}
	}
	return maxID + 1
}
