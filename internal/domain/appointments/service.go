package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"paw-n-care/internal/domain/owners"
	"paw-n-care/internal/domain/pets"
	"paw-n-care/internal/domain/vets"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("appointment not found")

	// ErrOwnerMismatch: la mascota no pertenece al dueño indicado.
	ErrOwnerMismatch = errors.New("pet does not belong to owner")
)

type PetLookup interface {
	GetByID(ctx context.Context, id int64) (pets.Pet, error)
}

type OwnerLookup interface {
	GetByID(ctx context.Context, id int64) (owners.Owner, error)
}

type VetLookup interface {
	GetByID(ctx context.Context, id int64) (vets.Veterinarian, error)
}

type Service struct {
	repo     Repository
	petSvc   PetLookup
	ownerSvc OwnerLookup
	vetSvc   VetLookup
}

func NewService(repo Repository, petSvc PetLookup, ownerSvc OwnerLookup, vetSvc VetLookup) *Service {
	return &Service{
		repo:     repo,
		petSvc:   petSvc,
		ownerSvc: ownerSvc,
		vetSvc:   vetSvc,
	}
}

type CreateInput struct {
	PetID   int64
	OwnerID int64
	VetID   int64

	Date      time.Time
	StartTime string
	Reason    string
	Status    string
}

// Create valida que pet, owner y vet existan y que la mascota pertenezca al
// dueño indicado. No se valida solapamiento de horarios: queda pendiente de
// definición de producto si una misma franja pet/vet debe rechazarse.
func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	if in.Date.IsZero() {
		return Appointment{}, ErrInvalidInput
	}
	if !validStartTime(in.StartTime) {
		return Appointment{}, ErrInvalidInput
	}
	st, ok := ParseStatus(in.Status)
	if !ok {
		return Appointment{}, ErrInvalidInput
	}

	p, err := s.petSvc.GetByID(ctx, in.PetID)
	if err != nil {
		return Appointment{}, err
	}
	if _, err := s.ownerSvc.GetByID(ctx, in.OwnerID); err != nil {
		return Appointment{}, err
	}
	if _, err := s.vetSvc.GetByID(ctx, in.VetID); err != nil {
		return Appointment{}, err
	}
	if p.OwnerID != in.OwnerID {
		return Appointment{}, ErrOwnerMismatch
	}

	a := Appointment{
		PetID:     in.PetID,
		OwnerID:   in.OwnerID,
		VetID:     in.VetID,
		Date:      in.Date,
		StartTime: strings.TrimSpace(in.StartTime),
		Reason:    strings.TrimSpace(in.Reason),
		Status:    st,
	}
	return s.repo.Create(ctx, a)
}

type UpdateInput struct {
	Date      *time.Time
	StartTime *string
	Reason    *string
	Status    *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	if in.Date != nil {
		if in.Date.IsZero() {
			return Appointment{}, ErrInvalidInput
		}
		a.Date = *in.Date
	}
	if in.StartTime != nil {
		if !validStartTime(*in.StartTime) {
			return Appointment{}, ErrInvalidInput
		}
		a.StartTime = strings.TrimSpace(*in.StartTime)
	}
	if in.Reason != nil {
		a.Reason = strings.TrimSpace(*in.Reason)
	}
	if in.Status != nil {
		st, ok := ParseStatus(*in.Status)
		if !ok {
			return Appointment{}, ErrInvalidInput
		}
		a.Status = st
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ParseStatus normaliza el texto recibido al enum canónico.
// "Cancelled" (doble ele) se acepta como entrada y se guarda como Canceled.
func ParseStatus(v string) (Status, bool) {
	switch strings.TrimSpace(v) {
	case string(StatusScheduled):
		return StatusScheduled, true
	case string(StatusCompleted):
		return StatusCompleted, true
	case string(StatusCanceled), "Cancelled":
		return StatusCanceled, true
	default:
		return "", false
	}
}

func validStartTime(v string) bool {
	_, err := time.Parse("15:04", strings.TrimSpace(v))
	return err == nil
}
