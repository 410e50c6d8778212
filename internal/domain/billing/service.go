package billing

import (
	"context"
	"errors"
	"strings"
	"time"

	"paw-n-care/internal/domain/appointments"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("bill not found")
)

type AppointmentLookup interface {
	GetByID(ctx context.Context, id int64) (appointments.Appointment, error)
}

type Service struct {
	repo    Repository
	apptSvc AppointmentLookup
	now     func() time.Time
}

func NewService(repo Repository, apptSvc AppointmentLookup) *Service {
	return &Service{
		repo:    repo,
		apptSvc: apptSvc,
		now:     time.Now,
	}
}

type CreateInput struct {
	AppointmentID int64
	TotalAmount   float64
	PaymentStatus string
	PaymentMethod string
	PaidAt        time.Time // cero = ahora
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Bill, error) {
	if in.TotalAmount < 0 {
		return Bill{}, ErrInvalidInput
	}
	st, ok := parsePaymentStatus(in.PaymentStatus)
	if !ok {
		return Bill{}, ErrInvalidInput
	}
	m, ok := parsePaymentMethod(in.PaymentMethod)
	if !ok {
		return Bill{}, ErrInvalidInput
	}

	if _, err := s.apptSvc.GetByID(ctx, in.AppointmentID); err != nil {
		return Bill{}, err
	}

	paidAt := in.PaidAt
	if paidAt.IsZero() {
		paidAt = s.now()
	}

	b := Bill{
		AppointmentID: in.AppointmentID,
		TotalAmount:   in.TotalAmount,
		PaymentStatus: st,
		PaymentMethod: m,
		PaidAt:        paidAt,
	}
	return s.repo.Create(ctx, b)
}

type UpdateInput struct {
	TotalAmount   *float64
	PaymentStatus *string
	PaymentMethod *string
	PaidAt        *time.Time
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Bill, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Bill{}, err
	}

	if in.TotalAmount != nil {
		if *in.TotalAmount < 0 {
			return Bill{}, ErrInvalidInput
		}
		b.TotalAmount = *in.TotalAmount
	}
	if in.PaymentStatus != nil {
		st, ok := parsePaymentStatus(*in.PaymentStatus)
		if !ok {
			return Bill{}, ErrInvalidInput
		}
		b.PaymentStatus = st
	}
	if in.PaymentMethod != nil {
		m, ok := parsePaymentMethod(*in.PaymentMethod)
		if !ok {
			return Bill{}, ErrInvalidInput
		}
		b.PaymentMethod = m
	}
	if in.PaidAt != nil {
		b.PaidAt = *in.PaidAt
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return Bill{}, err
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Bill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Bill, error) {
	return s.repo.List(ctx)
}

func parsePaymentStatus(v string) (PaymentStatus, bool) {
	switch strings.TrimSpace(v) {
	case string(PaymentPaid):
		return PaymentPaid, true
	case string(PaymentPending):
		return PaymentPending, true
	case string(PaymentOverdue):
		return PaymentOverdue, true
	default:
		return "", false
	}
}

func parsePaymentMethod(v string) (PaymentMethod, bool) {
	switch strings.TrimSpace(v) {
	case string(MethodCreditCard):
		return MethodCreditCard, true
	case string(MethodCash):
		return MethodCash, true
	case string(MethodBankTransfer):
		return MethodBankTransfer, true
	default:
		return "", false
	}
}
