package sqldb

import (
	"github.com/jmoiron/sqlx"

	"paw-n-care/internal/domain/appointments"
	"paw-n-care/internal/domain/auth"
	"paw-n-care/internal/domain/billing"
	"paw-n-care/internal/domain/medrecords"
	"paw-n-care/internal/domain/owners"
	"paw-n-care/internal/domain/pets"
	"paw-n-care/internal/domain/vets"
)

// Store agrupa los repositorios SQL sobre un mismo pool. Los borrados en
// cascada los resuelve el esquema (FKs con ON DELETE CASCADE), así que los
// repos solo ejecutan el DELETE de su tabla.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Owners() owners.Repository             { return ownersRepo{db: s.db} }
func (s *Store) Pets() pets.Repository                 { return petsRepo{db: s.db} }
func (s *Store) Vets() vets.Repository                 { return vetsRepo{db: s.db} }
func (s *Store) Appointments() appointments.Repository { return apptsRepo{db: s.db} }
func (s *Store) MedicalRecords() medrecords.Repository { return recordsRepo{db: s.db} }
func (s *Store) Bills() billing.Repository             { return billsRepo{db: s.db} }
func (s *Store) Users() auth.Repository                { return usersRepo{db: s.db} }
