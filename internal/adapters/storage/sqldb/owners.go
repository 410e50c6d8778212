package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"paw-n-care/internal/domain/owners"
)

type ownersRepo struct {
	db *sqlx.DB
}

func (r ownersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	q := r.db.Rebind(`
		INSERT INTO owners (first_name, last_name, address, phone_number, email, registration_date)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING owner_id
	`)
	if err := r.db.QueryRowContext(ctx, q,
		o.FirstName, o.LastName, o.Address, o.Phone, o.Email, o.RegisteredAt,
	).Scan(&o.ID); err != nil {
		return owners.Owner{}, err
	}
	return o, nil
}

func (r ownersRepo) Update(ctx context.Context, o owners.Owner) error {
	q := r.db.Rebind(`
		UPDATE owners
		SET first_name = ?, last_name = ?, address = ?, phone_number = ?, email = ?
		WHERE owner_id = ?
	`)
	res, err := r.db.ExecContext(ctx, q,
		o.FirstName, o.LastName, o.Address, o.Phone, o.Email, o.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}

func (r ownersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	q := r.db.Rebind(`
		SELECT owner_id, first_name, last_name, address, phone_number, email, registration_date
		FROM owners
		WHERE owner_id = ?
	`)
	var o owners.Owner
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.Phone, &o.Email, &o.RegisteredAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return owners.Owner{}, owners.ErrNotFound
	}
	if err != nil {
		return owners.Owner{}, err
	}
	return o, nil
}

func (r ownersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT owner_id, first_name, last_name, address, phone_number, email, registration_date
		FROM owners
		ORDER BY owner_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(
			&o.ID, &o.FirstName, &o.LastName, &o.Address, &o.Phone, &o.Email, &o.RegisteredAt,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r ownersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM owners WHERE owner_id = ?`), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return owners.ErrNotFound
	}
	return nil
}
