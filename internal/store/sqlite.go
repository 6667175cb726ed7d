package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/models"
	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

type sqliteUserRepository struct {
	logger *logger.Logger
	db     *sql.DB

	// serializes writers so id assignment stays max+1 even under
	// concurrent requests
	mu sync.Mutex
}

// NewSQLiteUserRepository returns a [UserRepository] backed by an already
// opened and migrated SQLite database. Callers normally construct it through
// [NewStorages], which opens the DSN and runs the embedded migrations.
func NewSQLiteUserRepository(db *sql.DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("sqlite UserRepository created")
	return &sqliteUserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sqliteUserRepository) List(ctx context.Context, offset, limit int) ([]models.User, error) {
	if offset < 0 || limit <= 0 {
		return []models.User{}, nil
	}

	query, args, err := sq.Select("id", "name", "email").
		From(models.User{}.TableName()).
		OrderBy("id ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*sqliteUserRepository.List").Msg("error querying users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *sqliteUserRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	query, args, err := sq.Select("id", "name", "email").
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Name, &user.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		r.logger.Err(err).Str("func", "*sqliteUserRepository.FindByID").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

func (r *sqliteUserRepository) Insert(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nextIDQuery, _, err := sq.Select("COALESCE(MAX(id), 0) + 1").
		From(models.User{}.TableName()).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, nextIDQuery).Scan(&user.ID); err != nil {
		r.logger.Err(err).Str("func", "*sqliteUserRepository.Insert").Msg("error computing next id")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	query, args, err := sq.Insert(models.User{}.TableName()).
		Columns("id", "name", "email").
		Values(user.ID, user.Name, user.Email).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sqliteUserRepository.Insert").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *sqliteUserRepository) Update(ctx context.Context, id int64, name, email string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	query, args, err := sq.Update(models.User{}.TableName()).
		Set("name", name).
		Set("email", email).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*sqliteUserRepository.Update").Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return models.User{ID: id, Name: name, Email: email}, nil
}

func (r *sqliteUserRepository) Remove(ctx context.Context, id int64) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// fetch first so the removed entity can be returned to the caller
	removed, err := r.findByIDLocked(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	query, args, err := sq.Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sqliteUserRepository.Remove").Msg("error deleting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return removed, nil
}

func (r *sqliteUserRepository) findByIDLocked(ctx context.Context, id int64) (models.User, error) {
	query, args, err := sq.Select("id", "name", "email").
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Name, &user.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
