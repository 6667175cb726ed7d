package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedSQLiteRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSQLiteUserRepository(db, logger.Nop()), mock
}

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "email"})
	for _, u := range users {
		rows.AddRow(u.ID, u.Name, u.Email)
	}
	return rows
}

func TestSQLiteRepository_List(t *testing.T) {
	repo, mock := newMockedSQLiteRepo(t)

	mock.ExpectQuery("SELECT id, name, email FROM users ORDER BY id ASC LIMIT 10 OFFSET 0").
		WillReturnRows(userRows(
			models.User{ID: 1, Name: "Alice", Email: "alice@example.com"},
			models.User{ID: 2, Name: "Bob", Email: "bob@example.com"},
		))

	users, err := repo.List(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, int64(2), users[1].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_ListClampsNegativeOffset(t *testing.T) {
	repo, mock := newMockedSQLiteRepo(t)

	// no query must reach the database
	users, err := repo.List(context.Background(), -1, 10)
	require.NoError(t, err)
	assert.Empty(t, users)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_ListQueryError(t *testing.T) {
	repo, mock := newMockedSQLiteRepo(t)

	mock.ExpectQuery("SELECT id, name, email FROM users ORDER BY id ASC LIMIT 10 OFFSET 0").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.List(context.Background(), 0, 10)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLiteRepository_FindByID(t *testing.T) {
	repo, mock := newMockedSQLiteRepo(t)

	mock.ExpectQuery("SELECT id, name, email FROM users WHERE id = ?").
		WithArgs(int64(2)).
		WillReturnRows(userRows(models.User{ID: 2, Name: "Bob", Email: "bob@example.com"}))

	found, err := repo.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Bob", found.Name)
}

func TestSQLiteRepository_FindByIDNotFound(t *testing.T) {
	repo, mock := newMockedSQLiteRepo(t)

	mock.ExpectQuery("SELECT id, name, email FROM users WHERE id = ?").
		WithArgs(int64(42)).
		WillReturnRows(userRows())

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLiteRepository_InsertAssignsNextID(t *testing.T) {
	repo, mock := newMockedSQLiteRepo(t)

	mock.ExpectQuery("SELECT COALESCE(MAX(id), 0) + 1 FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(3))
	mock.ExpectExec("INSERT INTO users (id,name,email) VALUES (?,?,?)").
		WithArgs(int64(3), "Charlie", "charlie@example.com").
		WillReturnResult(sqlmock.NewResult(3, 1))

	stored, err := repo.Insert(context.Background(), models.User{Name: "Charlie", Email: "charlie@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), stored.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_Update(t *testing.T) {
	repo, mock := newMockedSQLiteRepo(t)

	mock.ExpectExec("UPDATE users SET name = ?, email = ? WHERE id = ?").
		WithArgs("Alicia", "alicia@example.com", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.Update(context.Background(), 1, "Alicia", "alicia@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 1, Name: "Alicia", Email: "alicia@example.com"}, updated)
}

func TestSQLiteRepository_UpdateUnknownID(t *testing.T) {
	repo, mock := newMockedSQLiteRepo(t)

	mock.ExpectExec("UPDATE users SET name = ?, email = ? WHERE id = ?").
		WithArgs("Nobody", "nobody@example.com", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), 42, "Nobody", "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLiteRepository_Remove(t *testing.T) {
	repo, mock := newMockedSQLiteRepo(t)

	mock.ExpectQuery("SELECT id, name, email FROM users WHERE id = ?").
		WithArgs(int64(1)).
		WillReturnRows(userRows(models.User{ID: 1, Name: "Alice", Email: "alice@example.com"}))
	mock.ExpectExec("DELETE FROM users WHERE id = ?").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.Remove(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", removed.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRepository_RemoveUnknownID(t *testing.T) {
	repo, mock := newMockedSQLiteRepo(t)

	mock.ExpectQuery("SELECT id, name, email FROM users WHERE id = ?").
		WithArgs(int64(42)).
		WillReturnRows(userRows())

	_, err := repo.Remove(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
