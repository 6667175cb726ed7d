package apiclient

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-user-registry/internal/config"
	registryhttp "github.com/MKhiriev/go-user-registry/internal/handler/http"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient spins up the full server stack over an in-memory store and
// points a Client at it.
func newTestClient(t *testing.T) *Client {
	t.Helper()

	log := logger.Nop()
	storages, err := store.NewStorages(config.Storage{}, log)
	require.NoError(t, err)

	services := service.NewServices(storages, log)
	h := registryhttp.NewHandler(services, config.App{AuthToken: "valid-token"}, log)

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return NewClient(Config{
		BaseURL:   srv.URL,
		AuthToken: "valid-token",
	})
}

func TestClient_ListUsers(t *testing.T) {
	client := newTestClient(t)

	users, err := client.ListUsers(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
}

func TestClient_ListUsers_Pagination(t *testing.T) {
	client := newTestClient(t)

	users, err := client.ListUsers(context.Background(), 2, 1)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(2), users[0].ID)
}

func TestClient_GetUser(t *testing.T) {
	client := newTestClient(t)

	user, err := client.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, user)

	_, err = client.GetUser(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "User not found.")
}

func TestClient_CreateUser(t *testing.T) {
	client := newTestClient(t)

	created, err := client.CreateUser(context.Background(), models.User{Name: "Charlie", Email: "charlie@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	_, err = client.CreateUser(context.Background(), models.User{Name: "Nameless"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Name and Email are required fields.")
}

func TestClient_UpdateUser(t *testing.T) {
	client := newTestClient(t)

	err := client.UpdateUser(context.Background(), 1, "Alicia", "alicia@example.com")
	require.NoError(t, err)

	user, err := client.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", user.Name)

	err = client.UpdateUser(context.Background(), 42, "Nobody", "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_DeleteUser(t *testing.T) {
	client := newTestClient(t)

	removed, err := client.DeleteUser(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Bob", removed.Name)

	_, err = client.DeleteUser(context.Background(), 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_WrongTokenIsUnauthorized(t *testing.T) {
	client := newTestClient(t)
	client.client.SetHeader("Authorization", "wrong-token")

	_, err := client.ListUsers(context.Background(), 0, 0)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid authorization token.")
}
