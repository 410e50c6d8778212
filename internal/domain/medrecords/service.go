package medrecords

import (
	"context"
	"errors"
	"strings"
	"time"

	"paw-n-care/internal/domain/appointments"
	"paw-n-care/internal/domain/pets"
	"paw-n-care/internal/domain/vets"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("medical record not found")
)

type PetLookup interface {
	GetByID(ctx context.Context, id int64) (pets.Pet, error)
}

type VetLookup interface {
	GetByID(ctx context.Context, id int64) (vets.Veterinarian, error)
}

type AppointmentLookup interface {
	GetByID(ctx context.Context, id int64) (appointments.Appointment, error)
}

type Service struct {
	repo    Repository
	petSvc  PetLookup
	vetSvc  VetLookup
	apptSvc AppointmentLookup
	now     func() time.Time
}

func NewService(repo Repository, petSvc PetLookup, vetSvc VetLookup, apptSvc AppointmentLookup) *Service {
	return &Service{
		repo:    repo,
		petSvc:  petSvc,
		vetSvc:  vetSvc,
		apptSvc: apptSvc,
		now:     time.Now,
	}
}

type CreateInput struct {
	AppointmentID *int64
	PetID         int64
	VetID         int64

	VisitedAt            time.Time // cero = ahora
	Diagnosis            string
	Treatment            string
	PrescribedMedication string
	Notes                string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (MedicalRecord, error) {
	if strings.TrimSpace(in.Diagnosis) == "" || strings.TrimSpace(in.Treatment) == "" {
		return MedicalRecord{}, ErrInvalidInput
	}

	if _, err := s.petSvc.GetByID(ctx, in.PetID); err != nil {
		return MedicalRecord{}, err
	}
	if _, err := s.vetSvc.GetByID(ctx, in.VetID); err != nil {
		return MedicalRecord{}, err
	}
	if in.AppointmentID != nil {
		if _, err := s.apptSvc.GetByID(ctx, *in.AppointmentID); err != nil {
			return MedicalRecord{}, err
		}
	}

	visited := in.VisitedAt
	if visited.IsZero() {
		visited = s.now()
	}

	m := MedicalRecord{
		AppointmentID:        in.AppointmentID,
		PetID:                in.PetID,
		VetID:                in.VetID,
		VisitedAt:            visited,
		Diagnosis:            strings.TrimSpace(in.Diagnosis),
		Treatment:            strings.TrimSpace(in.Treatment),
		PrescribedMedication: strings.TrimSpace(in.PrescribedMedication),
		Notes:                strings.TrimSpace(in.Notes),
	}
	return s.repo.Create(ctx, m)
}

type UpdateInput struct {
	Diagnosis            *string
	Treatment            *string
	PrescribedMedication *string
	Notes                *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (MedicalRecord, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MedicalRecord{}, err
	}

	if in.Diagnosis != nil {
		if strings.TrimSpace(*in.Diagnosis) == "" {
			return MedicalRecord{}, ErrInvalidInput
		}
		m.Diagnosis = strings.TrimSpace(*in.Diagnosis)
	}
	if in.Treatment != nil {
		if strings.TrimSpace(*in.Treatment) == "" {
			return MedicalRecord{}, ErrInvalidInput
		}
		m.Treatment = strings.TrimSpace(*in.Treatment)
	}
	if in.PrescribedMedication != nil {
		m.PrescribedMedication = strings.TrimSpace(*in.PrescribedMedication)
	}
	if in.Notes != nil {
		m.Notes = strings.TrimSpace(*in.Notes)
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return MedicalRecord{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (MedicalRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]MedicalRecord, error) {
	return s.repo.List(ctx)
}
