package service

import (
	"context"

	"github.com/MKhiriev/go-user-registry/models"
)

// UserService exposes the registry's CRUD operations to the transport layer.
// It owns pagination defaults and validation; storage access goes through
// the injected [store.UserRepository].
type UserService interface {
	// ListUsers returns the requested page of users in store order, with
	// offset computed as (page-1)*pageSize. Zero or negative page values
	// produce a negative offset, which the store clamps to an empty page;
	// defaulting of absent query parameters happens at the transport layer.
	ListUsers(ctx context.Context, page, pageSize int) ([]models.User, error)

	// GetUser returns the user with the given id or store.ErrUserNotFound.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// CreateUser validates the incoming user (required fields, then email
	// format) and inserts it. The returned entity carries the assigned id.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUser overwrites the name and email of an existing user.
	// Lookup failures surface before validation failures. The email-format
	// rule runs against the currently stored email, not the incoming one;
	// see the package tests pinning this behavior.
	UpdateUser(ctx context.Context, id int64, name, email string) (models.User, error)

	// DeleteUser removes the user with the given id and returns the
	// removed entity, or store.ErrUserNotFound.
	DeleteUser(ctx context.Context, id int64) (models.User, error)
}
