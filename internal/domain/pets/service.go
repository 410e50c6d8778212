package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"paw-n-care/internal/domain/owners"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

// OwnerLookup evita acoplar el servicio completo de owners:
// solo necesitamos validar que el dueño exista.
type OwnerLookup interface {
	GetByID(ctx context.Context, id int64) (owners.Owner, error)
}

type Service struct {
	repo     Repository
	ownerSvc OwnerLookup
}

func NewService(repo Repository, ownerSvc OwnerLookup) *Service {
	return &Service{repo: repo, ownerSvc: ownerSvc}
}

type CreateInput struct {
	OwnerID   int64
	Name      string
	Species   string
	Breed     string
	BirthDate time.Time
	Gender    string
	Weight    float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}
	// peso negativo o cero: el esquema original no lo frenaba, acá sí
	if in.Weight <= 0 {
		return Pet{}, ErrInvalidInput
	}
	g, ok := parseGender(in.Gender)
	if !ok {
		return Pet{}, ErrInvalidInput
	}
	if in.BirthDate.IsZero() {
		return Pet{}, ErrInvalidInput
	}

	// el dueño tiene que existir; si no, NotFound explícito (no se traga)
	if _, err := s.ownerSvc.GetByID(ctx, in.OwnerID); err != nil {
		return Pet{}, err
	}

	p := Pet{
		OwnerID:   in.OwnerID,
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Breed:     strings.TrimSpace(in.Breed),
		BirthDate: in.BirthDate,
		Gender:    g,
		Weight:    in.Weight,
	}
	return s.repo.Create(ctx, p)
}

type UpdateInput struct {
	Name      *string
	Species   *string
	Breed     *string
	BirthDate *time.Time
	Gender    *string
	Weight    *float64
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		if strings.TrimSpace(*in.Species) == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Species = strings.TrimSpace(*in.Species)
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.BirthDate != nil {
		if in.BirthDate.IsZero() {
			return Pet{}, ErrInvalidInput
		}
		p.BirthDate = *in.BirthDate
	}
	if in.Gender != nil {
		g, ok := parseGender(*in.Gender)
		if !ok {
			return Pet{}, ErrInvalidInput
		}
		p.Gender = g
	}
	if in.Weight != nil {
		if *in.Weight <= 0 {
			return Pet{}, ErrInvalidInput
		}
		p.Weight = *in.Weight
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func parseGender(v string) (Gender, bool) {
	switch strings.TrimSpace(v) {
	case string(GenderMale):
		return GenderMale, true
	case string(GenderFemale):
		return GenderFemale, true
	default:
		return "", false
	}
}
