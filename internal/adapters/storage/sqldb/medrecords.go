package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"paw-n-care/internal/domain/medrecords"
)

type recordsRepo struct {
	db *sqlx.DB
}

func (r recordsRepo) Create(ctx context.Context, m medrecords.MedicalRecord) (medrecords.MedicalRecord, error) {
	q := r.db.Rebind(`
		INSERT INTO medical_records (appointment_id, pet_id, vet_id, visit_date, diagnosis, treatment, prescribed_medication, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING record_id
	`)
	if err := r.db.QueryRowContext(ctx, q,
		toNullInt64(m.AppointmentID), m.PetID, m.VetID,
		m.VisitedAt, m.Diagnosis, m.Treatment, m.PrescribedMedication, m.Notes,
	).Scan(&m.ID); err != nil {
		return medrecords.MedicalRecord{}, err
	}
	return m, nil
}

func (r recordsRepo) Update(ctx context.Context, m medrecords.MedicalRecord) error {
	q := r.db.Rebind(`
		UPDATE medical_records
		SET diagnosis = ?, treatment = ?, prescribed_medication = ?, notes = ?
		WHERE record_id = ?
	`)
	res, err := r.db.ExecContext(ctx, q,
		m.Diagnosis, m.Treatment, m.PrescribedMedication, m.Notes, m.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return medrecords.ErrNotFound
	}
	return nil
}

func (r recordsRepo) GetByID(ctx context.Context, id int64) (medrecords.MedicalRecord, error) {
	q := r.db.Rebind(`
		SELECT record_id, appointment_id, pet_id, vet_id, visit_date, diagnosis, treatment, prescribed_medication, notes
		FROM medical_records
		WHERE record_id = ?
	`)
	m, err := scanRecord(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return medrecords.MedicalRecord{}, medrecords.ErrNotFound
	}
	return m, err
}

func (r recordsRepo) List(ctx context.Context) ([]medrecords.MedicalRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT record_id, appointment_id, pet_id, vet_id, visit_date, diagnosis, treatment, prescribed_medication, notes
		FROM medical_records
		ORDER BY record_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medrecords.MedicalRecord, 0)
	for rows.Next() {
		m, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanRecord(row rowScanner) (medrecords.MedicalRecord, error) {
	var m medrecords.MedicalRecord
	var apptID sql.NullInt64
	if err := row.Scan(
		&m.ID, &apptID, &m.PetID, &m.VetID,
		&m.VisitedAt, &m.Diagnosis, &m.Treatment, &m.PrescribedMedication, &m.Notes,
	); err != nil {
		return medrecords.MedicalRecord{}, err
	}
	if apptID.Valid {
		v := apptID.Int64
		m.AppointmentID = &v
	}
	return m, nil
}

func toNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
