package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"paw-n-care/internal/domain/pets"
)

type petsRepo struct {
	db *sqlx.DB
}

func (r petsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	q := r.db.Rebind(`
		INSERT INTO pets (owner_id, name, species, breed, date_of_birth, gender, weight)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING pet_id
	`)
	if err := r.db.QueryRowContext(ctx, q,
		p.OwnerID, p.Name, p.Species, p.Breed, p.BirthDate, string(p.Gender), p.Weight,
	).Scan(&p.ID); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r petsRepo) Update(ctx context.Context, p pets.Pet) error {
	q := r.db.Rebind(`
		UPDATE pets
		SET name = ?, species = ?, breed = ?, date_of_birth = ?, gender = ?, weight = ?
		WHERE pet_id = ?
	`)
	res, err := r.db.ExecContext(ctx, q,
		p.Name, p.Species, p.Breed, p.BirthDate, string(p.Gender), p.Weight, p.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r petsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	q := r.db.Rebind(`
		SELECT pet_id, owner_id, name, species, breed, date_of_birth, gender, weight
		FROM pets
		WHERE pet_id = ?
	`)
	p, err := scanPet(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}

func (r petsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.list(ctx, `
		SELECT pet_id, owner_id, name, species, breed, date_of_birth, gender, weight
		FROM pets
		ORDER BY pet_id ASC
	`)
}

func (r petsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	return r.list(ctx, r.db.Rebind(`
		SELECT pet_id, owner_id, name, species, breed, date_of_birth, gender, weight
		FROM pets
		WHERE owner_id = ?
		ORDER BY pet_id ASC
	`), ownerID)
}

func (r petsRepo) list(ctx context.Context, q string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r petsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM pets WHERE pet_id = ?`), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var gender string
	if err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Species, &p.Breed, &p.BirthDate, &gender, &p.Weight,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Gender = pets.Gender(gender)
	return p, nil
}
