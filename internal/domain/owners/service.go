package owners

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("owner not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	FirstName string
	LastName  string
	Address   string
	Phone     string
	Email     string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return Owner{}, ErrInvalidInput
	}
	if !validPhone(in.Phone) {
		return Owner{}, ErrInvalidInput
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return Owner{}, ErrInvalidInput
	}

	o := Owner{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Address:      strings.TrimSpace(in.Address),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		RegisteredAt: s.now(),
	}
	return s.repo.Create(ctx, o)
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	FirstName *string
	LastName  *string
	Address   *string
	Phone     *string
	Email     *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Owner, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}

	if in.FirstName != nil {
		if strings.TrimSpace(*in.FirstName) == "" {
			return Owner{}, ErrInvalidInput
		}
		o.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		if strings.TrimSpace(*in.LastName) == "" {
			return Owner{}, ErrInvalidInput
		}
		o.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Address != nil {
		o.Address = strings.TrimSpace(*in.Address)
	}
	if in.Phone != nil {
		if !validPhone(*in.Phone) {
			return Owner{}, ErrInvalidInput
		}
		o.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		if _, err := mail.ParseAddress(strings.TrimSpace(*in.Email)); err != nil {
			return Owner{}, ErrInvalidInput
		}
		o.Email = strings.TrimSpace(*in.Email)
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Owner, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

// Delete borra el owner y toda su cascada (pets, appointments, records, bills).
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// validPhone: solo dígitos (y + inicial opcional), máximo 15 por el largo
// de columna heredado del esquema original.
func validPhone(p string) bool {
	p = strings.TrimSpace(p)
	if p == "" || len(p) > 15 {
		return false
	}
	for i, r := range p {
		if i == 0 && r == '+' {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
