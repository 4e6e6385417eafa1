package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"tasktrack/internal/core/domain"
	"tasktrack/internal/core/ports"
)

const (
	selectUserQuery = `
SELECT id, name, email, created_at
FROM users
WHERE id = ?;
`

	selectUserByEmailQuery = `
SELECT id, name, email, password, created_at
FROM users
WHERE email = ?;
`

	listUsersQuery = `
SELECT id, name, email, created_at
FROM users
ORDER BY created_at DESC, id DESC;
`

	insertUserQuery = `
INSERT INTO users (name, email, password)
VALUES (?, ?, ?);
`

	// COALESCE keeps the stored value for every field the caller did not
	// supply, so the merge happens in a single scoped statement.
	updateUserQuery = `
UPDATE users
SET name     = COALESCE(?, name),
    email    = COALESCE(?, email),
    password = COALESCE(?, password)
WHERE id = ?;
`

	deleteUserQuery = `
DELETE FROM users
WHERE id = ?;
`
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (domain.User, error) {
	result, err := r.db.ExecContext(ctx, insertUserQuery, name, email, passwordHash)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.User{}, domain.ErrUserExists
		}
		return domain.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	return r.FindByID(ctx, uint64(id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, string, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, selectUserByEmailQuery, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, "", domain.ErrUserNotFound
		}
		return domain.User{}, "", err
	}

	return mapUserRowToDomainUser(row), row.Password, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, selectUserQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, listUsersQuery); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id uint64, name, email, passwordHash *string) (domain.User, error) {
	_, err := r.db.ExecContext(ctx, updateUserQuery, name, email, passwordHash, id)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.User{}, domain.ErrUserExists
		}
		return domain.User{}, err
	}

	// MySQL reports zero affected rows for a no-op update, so existence is
	// checked by re-reading the row instead.
	return r.FindByID(ctx, id)
}

func (r *UserRepository) Delete(ctx context.Context, id uint64) (domain.User, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	result, err := r.db.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return domain.User{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.User{}, err
	}
	if affected == 0 {
		return domain.User{}, domain.ErrUserNotFound
	}

	return user, nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
	}
}
