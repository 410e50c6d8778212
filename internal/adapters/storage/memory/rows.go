package memory

import (
	"context"
	"fmt"

	"paw-n-care/internal/domain/appointments"
	"paw-n-care/internal/domain/billing"
	"paw-n-care/internal/domain/medrecords"
	"paw-n-care/internal/domain/owners"
	"paw-n-care/internal/domain/pets"
	"paw-n-care/internal/domain/vets"
	"paw-n-care/internal/search"
)

// Rows implementa search.RowSource: materializa el row aplanado de cada
// entidad con sus relaciones ya resueltas (el equivalente in-memory del
// select_related), en orden de inserción.
func (s *Store) Rows(ctx context.Context, entity search.Entity) ([]search.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch entity {
	case search.EntityAppointment:
		return s.appointmentRowsLocked(), nil
	case search.EntityMedicalRecord:
		return s.recordRowsLocked(), nil
	case search.EntityBilling:
		return s.billRowsLocked(), nil
	case search.EntityPet:
		return s.petRowsLocked(), nil
	case search.EntityOwner:
		return s.ownerRowsLocked(), nil
	default:
		return nil, fmt.Errorf("memory: unknown search entity %q", entity)
	}
}

func (s *Store) petIndexLocked() map[int64]pets.Pet {
	idx := make(map[int64]pets.Pet, len(s.pets))
	for _, p := range s.pets {
		idx[p.ID] = p
	}
	return idx
}

func (s *Store) ownerIndexLocked() map[int64]owners.Owner {
	idx := make(map[int64]owners.Owner, len(s.owners))
	for _, o := range s.owners {
		idx[o.ID] = o
	}
	return idx
}

func (s *Store) vetIndexLocked() map[int64]vets.Veterinarian {
	idx := make(map[int64]vets.Veterinarian, len(s.vets))
	for _, v := range s.vets {
		idx[v.ID] = v
	}
	return idx
}

func (s *Store) appointmentRowsLocked() []search.Row {
	petIdx := s.petIndexLocked()
	ownerIdx := s.ownerIndexLocked()
	vetIdx := s.vetIndexLocked()

	out := make([]search.Row, 0, len(s.appts))
	for _, a := range s.appts {
		p := petIdx[a.PetID]
		o := ownerIdx[a.OwnerID]
		v := vetIdx[a.VetID]
		out = append(out, search.Row{
			"appointment_id":   a.ID,
			"pet_id":           a.PetID,
			"pet_name":         p.Name,
			"owner_id":         a.OwnerID,
			"owner_first_name": o.FirstName,
			"owner_last_name":  o.LastName,
			"vet_id":           a.VetID,
			"vet_first_name":   v.FirstName,
			"vet_last_name":    v.LastName,
			"appointment_date": a.Date,
			"appointment_time": a.StartTime,
			"reason":           a.Reason,
			"status":           string(a.Status),
		})
	}
	return out
}

func (s *Store) recordRowsLocked() []search.Row {
	petIdx := s.petIndexLocked()
	vetIdx := s.vetIndexLocked()

	out := make([]search.Row, 0, len(s.records))
	for _, m := range s.records {
		p := petIdx[m.PetID]
		v := vetIdx[m.VetID]
		row := search.Row{
			"record_id":             m.ID,
			"appointment_id":        nil,
			"pet_id":                m.PetID,
			"pet_name":              p.Name,
			"vet_id":                m.VetID,
			"vet_first_name":        v.FirstName,
			"vet_last_name":         v.LastName,
			"visit_date":            m.VisitedAt,
			"diagnosis":             m.Diagnosis,
			"treatment":             m.Treatment,
			"prescribed_medication": m.PrescribedMedication,
			"notes":                 m.Notes,
		}
		if m.AppointmentID != nil {
			row["appointment_id"] = *m.AppointmentID
		}
		out = append(out, row)
	}
	return out
}

func (s *Store) billRowsLocked() []search.Row {
	petIdx := s.petIndexLocked()
	ownerIdx := s.ownerIndexLocked()
	apptIdx := make(map[int64]appointments.Appointment, len(s.appts))
	for _, a := range s.appts {
		apptIdx[a.ID] = a
	}

	out := make([]search.Row, 0, len(s.bills))
	for _, b := range s.bills {
		a := apptIdx[b.AppointmentID]
		p := petIdx[a.PetID]
		o := ownerIdx[a.OwnerID]
		out = append(out, search.Row{
			"bill_id":          b.ID,
			"appointment_id":   b.AppointmentID,
			"pet_name":         p.Name,
			"owner_first_name": o.FirstName,
			"owner_last_name":  o.LastName,
			"total_amount":     b.TotalAmount,
			"payment_status":   string(b.PaymentStatus),
			"payment_method":   string(b.PaymentMethod),
			"payment_date":     b.PaidAt,
		})
	}
	return out
}

func (s *Store) petRowsLocked() []search.Row {
	ownerIdx := s.ownerIndexLocked()

	out := make([]search.Row, 0, len(s.pets))
	for _, p := range s.pets {
		o := ownerIdx[p.OwnerID]
		out = append(out, search.Row{
			"pet_id":           p.ID,
			"name":             p.Name,
			"species":          p.Species,
			"breed":            p.Breed,
			"date_of_birth":    p.BirthDate,
			"gender":           string(p.Gender),
			"weight":           p.Weight,
			"owner_id":         p.OwnerID,
			"owner_first_name": o.FirstName,
			"owner_last_name":  o.LastName,
		})
	}
	return out
}

func (s *Store) ownerRowsLocked() []search.Row {
	out := make([]search.Row, 0, len(s.owners))
	for _, o := range s.owners {
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
	return out
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
