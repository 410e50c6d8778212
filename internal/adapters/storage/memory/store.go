package memory

import (
	"errors"
	"sync"

	"paw-n-care/internal/domain/appointments"
	"paw-n-care/internal/domain/auth"
	"paw-n-care/internal/domain/billing"
	"paw-n-care/internal/domain/medrecords"
	"paw-n-care/internal/domain/owners"
	"paw-n-care/internal/domain/pets"
	"paw-n-care/internal/domain/vets"
)

var ErrNotFound = errors.New("not found")

// Store es el entity store in-memory (dev y tests). Un solo lock para todo:
// las cascadas tocan varias colecciones y así quedan atómicas.
// Los slices preservan orden de inserción, que es el orden de listado.
type Store struct {
	mu sync.RWMutex

	owners  []owners.Owner
	pets    []pets.Pet
	vets    []vets.Veterinarian
	appts   []appointments.Appointment
	records []medrecords.MedicalRecord
	bills   []billing.Bill
	users   []auth.User

	seq map[string]int64
}

func NewStore() *Store {
	return &Store{seq: make(map[string]int64)}
}

func (s *Store) nextID(entity string) int64 {
	s.seq[entity]++
	return s.seq[entity]
}

// Vistas por entidad, cada una implementa el Repository de su dominio.

func (s *Store) Owners() owners.Repository             { return ownersRepo{s} }
func (s *Store) Pets() pets.Repository                 { return petsRepo{s} }
func (s *Store) Vets() vets.Repository                 { return vetsRepo{s} }
func (s *Store) Appointments() appointments.Repository { return apptsRepo{s} }
func (s *Store) MedicalRecords() medrecords.Repository { return recordsRepo{s} }
func (s *Store) Bills() billing.Repository             { return billsRepo{s} }
func (s *Store) Users() auth.Repository                { return usersRepo{s} }

// --- cascadas (se llaman con el lock tomado) ---

func (s *Store) deleteOwnerLocked(id int64) {
	// ids primero: deleteWhere compacta el slice y no se puede iterar a la vez
	var petIDs []int64
	for _, p := range s.pets {
		if p.OwnerID == id {
			petIDs = append(petIDs, p.ID)
		}
	}
	for _, pid := range petIDs {
		s.deletePetLocked(pid)
	}
	s.owners = deleteWhere(s.owners, func(o owners.Owner) bool { return o.ID == id })
}

func (s *Store) deletePetLocked(id int64) {
	var apptIDs []int64
	for _, a := range s.appts {
		if a.PetID == id {
			apptIDs = append(apptIDs, a.ID)
		}
	}
	for _, aid := range apptIDs {
		s.deleteAppointmentLocked(aid)
	}
	s.records = deleteWhere(s.records, func(m medrecords.MedicalRecord) bool { return m.PetID == id })
	s.pets = deleteWhere(s.pets, func(p pets.Pet) bool { return p.ID == id })
}

func (s *Store) deleteVetLocked(id int64) {
	var apptIDs []int64
	for _, a := range s.appts {
		if a.VetID == id {
			apptIDs = append(apptIDs, a.ID)
		}
	}
	for _, aid := range apptIDs {
		s.deleteAppointmentLocked(aid)
	}
	s.records = deleteWhere(s.records, func(m medrecords.MedicalRecord) bool { return m.VetID == id })
	s.vets = deleteWhere(s.vets, func(v vets.Veterinarian) bool { return v.ID == id })
}

func (s *Store) deleteAppointmentLocked(id int64) {
	s.records = deleteWhere(s.records, func(m medrecords.MedicalRecord) bool {
		return m.AppointmentID != nil && *m.AppointmentID == id
	})
	s.bills = deleteWhere(s.bills, func(b billing.Bill) bool { return b.AppointmentID == id })
	s.appts = deleteWhere(s.appts, func(a appointments.Appointment) bool { return a.ID == id })
}

func deleteWhere[T any](in []T, match func(T) bool) []T {
	out := in[:0]
	for _, v := range in {
		if !match(v) {
			out = append(out, v)
		}
	}
	return out
}
