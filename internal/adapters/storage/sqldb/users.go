package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"paw-n-care/internal/domain/auth"
)

type usersRepo struct {
	db *sqlx.DB
}

func (r usersRepo) Create(ctx context.Context, u auth.User) (auth.User, error) {
	q := r.db.Rebind(`
		INSERT INTO users (username, password_hash)
		VALUES (?, ?)
		RETURNING user_id
	`)
	// el UNIQUE de username lo hace fallar si ya existe
	if err := r.db.QueryRowContext(ctx, q, u.Username, u.PasswordHash).Scan(&u.ID); err != nil {
		return auth.User{}, err
	}
	return u, nil
}

func (r usersRepo) GetByUsername(ctx context.Context, username string) (auth.User, error) {
	q := r.db.Rebind(`
		SELECT user_id, username, password_hash
		FROM users
		WHERE username = ?
	`)
	var u auth.User
	err := r.db.QueryRowContext(ctx, q, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return auth.User{}, auth.ErrNotFound
	}
	if err != nil {
		return auth.User{}, err
	}
	return u, nil
}
