package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"paw-n-care/internal/domain/vets"
)

type vetsRepo struct {
	db *sqlx.DB
}

func (r vetsRepo) Create(ctx context.Context, v vets.Veterinarian) (vets.Veterinarian, error) {
	q := r.db.Rebind(`
		INSERT INTO veterinarians (first_name, last_name, specialization, license_number, phone_number, email)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING vet_id
	`)
	if err := r.db.QueryRowContext(ctx, q,
		v.FirstName, v.LastName, v.Specialization, v.LicenseNumber, v.Phone, v.Email,
	).Scan(&v.ID); err != nil {
		return vets.Veterinarian{}, err
	}
	return v, nil
}

func (r vetsRepo) Update(ctx context.Context, v vets.Veterinarian) error {
	q := r.db.Rebind(`
		UPDATE veterinarians
		SET first_name = ?, last_name = ?, specialization = ?, license_number = ?, phone_number = ?, email = ?
		WHERE vet_id = ?
	`)
	res, err := r.db.ExecContext(ctx, q,
		v.FirstName, v.LastName, v.Specialization, v.LicenseNumber, v.Phone, v.Email, v.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return vets.ErrNotFound
	}
	return nil
}

func (r vetsRepo) GetByID(ctx context.Context, id int64) (vets.Veterinarian, error) {
	q := r.db.Rebind(`
		SELECT vet_id, first_name, last_name, specialization, license_number, phone_number, email
		FROM veterinarians
		WHERE vet_id = ?
	`)
	var v vets.Veterinarian
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&v.ID, &v.FirstName, &v.LastName, &v.Specialization, &v.LicenseNumber, &v.Phone, &v.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return vets.Veterinarian{}, vets.ErrNotFound
	}
	if err != nil {
		return vets.Veterinarian{}, err
	}
	return v, nil
}

func (r vetsRepo) List(ctx context.Context) ([]vets.Veterinarian, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT vet_id, first_name, last_name, specialization, license_number, phone_number, email
		FROM veterinarians
		ORDER BY vet_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Veterinarian, 0)
	for rows.Next() {
		var v vets.Veterinarian
		if err := rows.Scan(
			&v.ID, &v.FirstName, &v.LastName, &v.Specialization, &v.LicenseNumber, &v.Phone, &v.Email,
		); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r vetsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM veterinarians WHERE vet_id = ?`), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return vets.ErrNotFound
	}
	return nil
}
