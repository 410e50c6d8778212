package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"paw-n-care/internal/domain/appointments"
	"paw-n-care/internal/domain/billing"
	"paw-n-care/internal/domain/medrecords"
	"paw-n-care/internal/domain/pets"
	"paw-n-care/internal/domain/vets"
	"paw-n-care/internal/search"
)

// Rows implementa search.RowSource: cada entidad sale ya joineada con sus
// relaciones (el select_related en SQL). El row usa los mismos nombres
// físicos que declara la tabla de configuración de búsqueda.
func (s *Store) Rows(ctx context.Context, entity search.Entity) ([]search.Row, error) {
	switch entity {
	case search.EntityAppointment:
		return s.appointmentRows(ctx)
	case search.EntityMedicalRecord:
		return s.recordRows(ctx)
	case search.EntityBilling:
		return s.billRows(ctx)
	case search.EntityPet:
		return s.petRows(ctx)
	case search.EntityOwner:
		return s.ownerRows(ctx)
	default:
		return nil, fmt.Errorf("sqldb: unknown search entity %q", entity)
	}
}

func (s *Store) appointmentRows(ctx context.Context) ([]search.Row, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			a.appointment_id,
			a.pet_id, p.name,
			a.owner_id, o.first_name, o.last_name,
			a.vet_id, v.first_name, v.last_name,
			a.appointment_date, a.appointment_time,
			a.reason, a.status
		FROM appointments a
		JOIN pets p ON p.pet_id = a.pet_id
		JOIN owners o ON o.owner_id = a.owner_id
		JOIN veterinarians v ON v.vet_id = a.vet_id
		ORDER BY a.appointment_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]search.Row, 0)
	for rows.Next() {
		var (
			apptID, petID, ownerID, vetID                          int64
			petName, oFirst, oLast, vFirst, vLast, tm, reason, st  string
			date                                                   time.Time
		)
		if err := rows.Scan(
			&apptID, &petID, &petName, &ownerID, &oFirst, &oLast,
			&vetID, &vFirst, &vLast, &date, &tm, &reason, &st,
		); err != nil {
			return nil, err
		}
		out = append(out, search.Row{
			"appointment_id":   apptID,
			"pet_id":           petID,
			"pet_name":         petName,
			"owner_id":         ownerID,
			"owner_first_name": oFirst,
			"owner_last_name":  oLast,
			"vet_id":           vetID,
			"vet_first_name":   vFirst,
			"vet_last_name":    vLast,
			"appointment_date": date,
			"appointment_time": tm,
			"reason":           reason,
			"status":           st,
		})
	}
	return out, rows.Err()
}

func (s *Store) recordRows(ctx context.Context) ([]search.Row, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			m.record_id, m.appointment_id,
			m.pet_id, p.name,
			m.vet_id, v.first_name, v.last_name,
			m.visit_date, m.diagnosis, m.treatment,
			m.prescribed_medication, m.notes
		FROM medical_records m
		JOIN pets p ON p.pet_id = m.pet_id
		JOIN veterinarians v ON v.vet_id = m.vet_id
		ORDER BY m.record_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]search.Row, 0)
	for rows.Next() {
		var (
			recordID, petID, vetID                              int64
			apptID                                              sql.NullInt64
			petName, vFirst, vLast, diag, treat, med, notes     string
			visit                                               time.Time
		)
		if err := rows.Scan(
			&recordID, &apptID, &petID, &petName, &vetID, &vFirst, &vLast,
			&visit, &diag, &treat, &med, &notes,
		); err != nil {
			return nil, err
		}
		row := search.Row{
			"record_id":             recordID,
			"appointment_id":        nil,
			"pet_id":                petID,
			"pet_name":              petName,
			"vet_id":                vetID,
			"vet_first_name":        vFirst,
			"vet_last_name":         vLast,
			"visit_date":            visit,
			"diagnosis":             diag,
			"treatment":             treat,
			"prescribed_medication": med,
			"notes":                 notes,
		}
		if apptID.Valid {
			row["appointment_id"] = apptID.Int64
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) billRows(ctx context.Context) ([]search.Row, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			b.bill_id, b.appointment_id,
			p.name, o.first_name, o.last_name,
			b.total_amount, b.payment_status, b.payment_method, b.payment_date
		FROM bills b
		JOIN appointments a ON a.appointment_id = b.appointment_id
		JOIN pets p ON p.pet_id = a.pet_id
		JOIN owners o ON o.owner_id = a.owner_id
		ORDER BY b.bill_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]search.Row, 0)
	for rows.Next() {
		var (
			billID, apptID                 int64
			petName, oFirst, oLast, st, mt string
			amount                         float64
			paidAt                         time.Time
		)
		if err := rows.Scan(
			&billID, &apptID, &petName, &oFirst, &oLast, &amount, &st, &mt, &paidAt,
		); err != nil {
			return nil, err
		}
		out = append(out, search.Row{
			"bill_id":          billID,
			"appointment_id":   apptID,
			"pet_name":         petName,
			"owner_first_name": oFirst,
			"owner_last_name":  oLast,
			"total_amount":     amount,
			"payment_status":   st,
			"payment_method":   mt,
			"payment_date":     paidAt,
		})
	}
	return out, rows.Err()
}

func (s *Store) petRows(ctx context.Context) ([]search.Row, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			p.pet_id, p.name, p.species, p.breed,
			p.date_of_birth, p.gender, p.weight,
			p.owner_id, o.first_name, o.last_name
		FROM pets p
		JOIN owners o ON o.owner_id = p.owner_id
		ORDER BY p.pet_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]search.Row, 0)
	for rows.Next() {
		var (
			petID, ownerID                       int64
			name, species, breed, gender, oFirst, oLast string
			birth                                time.Time
			weight                               float64
		)
		if err := rows.Scan(
			&petID, &name, &species, &breed, &birth, &gender, &weight,
			&ownerID, &oFirst, &oLast,
		); err != nil {
			return nil, err
		}
		out = append(out, search.Row{
			"pet_id":           petID,
			"name":             name,
			"species":          species,
			"breed":            breed,
			"date_of_birth":    birth,
			"gender":           gender,
			"weight":           weight,
			"owner_id":         ownerID,
			"owner_first_name": oFirst,
			"owner_last_name":  oLast,
		})
	}
	return out, rows.Err()
}

func (s *Store) ownerRows(ctx context.Context) ([]search.Row, error) {
	all, err := s.Owners().List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]search.Row, 0, len(all))
	for _, o := range all {
		out = append(out, search.Row{
			"owner_id":          o.ID,
			"first_name":        o.FirstName,
			"last_name":         o.LastName,
			"address":           o.Address,
			"phone_number":      o.Phone,
			"email":             o.Email,
			"registration_date": o.RegisteredAt,
		})
	}
	return out, nil
}

// --- stats.Source ---

func (s *Store) ListVets(ctx context.Context) ([]vets.Veterinarian, error) {
	return s.Vets().List(ctx)
}

func (s *Store) ListPets(ctx context.Context) ([]pets.Pet, error) {
	return s.Pets().List(ctx)
}

func (s *Store) ListAppointments(ctx context.Context) ([]appointments.Appointment, error) {
	return s.Appointments().List(ctx)
}

func (s *Store) ListMedicalRecords(ctx context.Context) ([]medrecords.MedicalRecord, error) {
	return s.MedicalRecords().List(ctx)
}

func (s *Store) ListBills(ctx context.Context) ([]billing.Bill, error) {
	return s.Bills().List(ctx)
}
