package vets

import (
	"context"
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("veterinarian not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	FirstName      string
	LastName       string
	Specialization string
	LicenseNumber  string
	Phone          string
	Email          string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Veterinarian, error) {
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return Veterinarian{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.LicenseNumber) == "" {
		return Veterinarian{}, ErrInvalidInput
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return Veterinarian{}, ErrInvalidInput
	}

	v := Veterinarian{
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Specialization: strings.TrimSpace(in.Specialization),
		LicenseNumber:  strings.TrimSpace(in.LicenseNumber),
		Phone:          strings.TrimSpace(in.Phone),
		Email:          strings.TrimSpace(in.Email),
	}
	return s.repo.Create(ctx, v)
}

type UpdateInput struct {
	FirstName      *string
	LastName       *string
	Specialization *string
	LicenseNumber  *string
	Phone          *string
	Email          *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Veterinarian, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Veterinarian{}, err
	}

	if in.FirstName != nil {
		if strings.TrimSpace(*in.FirstName) == "" {
			return Veterinarian{}, ErrInvalidInput
		}
		v.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		if strings.TrimSpace(*in.LastName) == "" {
			return Veterinarian{}, ErrInvalidInput
		}
		v.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Specialization != nil {
		v.Specialization = strings.TrimSpace(*in.Specialization)
	}
	if in.LicenseNumber != nil {
		if strings.TrimSpace(*in.LicenseNumber) == "" {
			return Veterinarian{}, ErrInvalidInput
		}
		v.LicenseNumber = strings.TrimSpace(*in.LicenseNumber)
	}
	if in.Phone != nil {
		v.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		if _, err := mail.ParseAddress(strings.TrimSpace(*in.Email)); err != nil {
			return Veterinarian{}, ErrInvalidInput
		}
		v.Email = strings.TrimSpace(*in.Email)
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return Veterinarian{}, err
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Veterinarian, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Veterinarian, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
