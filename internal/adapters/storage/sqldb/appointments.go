package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"paw-n-care/internal/domain/appointments"
)

type apptsRepo struct {
	db *sqlx.DB
}

func (r apptsRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	q := r.db.Rebind(`
		INSERT INTO appointments (pet_id, owner_id, vet_id, appointment_date, appointment_time, reason, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING appointment_id
	`)
	if err := r.db.QueryRowContext(ctx, q,
		a.PetID, a.OwnerID, a.VetID, a.Date, a.StartTime, a.Reason, string(a.Status),
	).Scan(&a.ID); err != nil {
		return appointments.Appointment{}, err
	}
	return a, nil
}

func (r apptsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	q := r.db.Rebind(`
		UPDATE appointments
		SET appointment_date = ?, appointment_time = ?, reason = ?, status = ?
		WHERE appointment_id = ?
	`)
	res, err := r.db.ExecContext(ctx, q,
		a.Date, a.StartTime, a.Reason, string(a.Status), a.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func (r apptsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	q := r.db.Rebind(`
		SELECT appointment_id, pet_id, owner_id, vet_id, appointment_date, appointment_time, reason, status
		FROM appointments
		WHERE appointment_id = ?
	`)
	a, err := scanAppointment(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, err
}

func (r apptsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT appointment_id, pet_id, owner_id, vet_id, appointment_date, appointment_time, reason, status
		FROM appointments
		ORDER BY appointment_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r apptsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM appointments WHERE appointment_id = ?`), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return appointments.ErrNotFound
	}
	return nil
}

func scanAppointment(row rowScanner) (appointments.Appointment, error) {
	var a appointments.Appointment
	var status string
	if err := row.Scan(
		&a.ID, &a.PetID, &a.OwnerID, &a.VetID, &a.Date, &a.StartTime, &a.Reason, &status,
	); err != nil {
		return appointments.Appointment{}, err
	}
	a.Status = appointments.Status(status)
	return a, nil
}
