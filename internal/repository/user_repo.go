package repository

import (
	"context"
	"errors"
	"fmt"

	"team-builder-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// UserRepo stores registered users.
type UserRepo struct {
	db *Postgres
}

// NewUserRepo creates a UserRepo on the given connection.
func NewUserRepo(db *Postgres) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new user. On a duplicate username it returns ErrUserExists.
func (r *UserRepo) Create(ctx context.Context, username, passwordHash string) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
INSERT INTO usuarios (username, password_hash)
VALUES ($1, $2)
RETURNING id, username, password_hash
`, username, passwordHash)

	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.User{}, ErrUserExists
		}
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// GetByUsername returns the user with the given username.
// If no such user exists, it returns ErrUserNotFound.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (model.User, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT id, username, password_hash
FROM usuarios
WHERE username = $1
`, username)

	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByID returns the user with the given id.
// If no such user exists, it returns ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT id, username, password_hash
FROM usuarios
WHERE id = $1
`, id)

	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
