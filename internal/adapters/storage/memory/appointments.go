package memory

import (
	"context"

	"paw-n-care/internal/domain/appointments"
)

type apptsRepo struct {
	s *Store
}

func (r apptsRepo) Create(ctx context.Context, a appointments.Appointment) (appointments.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a.ID = r.s.nextID("appointment")
	r.s.appts = append(r.s.appts, a)
	return a, nil
}

func (r apptsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.appts {
		if r.s.appts[i].ID == a.ID {
			r.s.appts[i] = a
			return nil
		}
	}
	return appointments.ErrNotFound
}

func (r apptsRepo) GetByID(ctx context.Context, id int64) (appointments.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.appts {
		if a.ID == id {
			return a, nil
		}
	}
	return appointments.Appointment{}, appointments.ErrNotFound
}

func (r apptsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]appointments.Appointment, len(r.s.appts))
	copy(out, r.s.appts)
	return out, nil
}

func (r apptsRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	found := false
	for _, a := range r.s.appts {
		if a.ID == id {
			found = true
			break
		}
	}
	if !found {
		return appointments.ErrNotFound
	}

	r.s.deleteAppointmentLocked(id)
	return nil
}
