package memory

import (
	"context"

	"paw-n-care/internal/domain/vets"
)

type vetsRepo struct {
	s *Store
}

func (r vetsRepo) Create(ctx context.Context, v vets.Veterinarian) (vets.Veterinarian, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v.ID = r.s.nextID("vet")
	r.s.vets = append(r.s.vets, v)
	return v, nil
}

func (r vetsRepo) Update(ctx context.Context, v vets.Veterinarian) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.vets {
		if r.s.vets[i].ID == v.ID {
			r.s.vets[i] = v
			return nil
		}
	}
	return vets.ErrNotFound
}

func (r vetsRepo) GetByID(ctx context.Context, id int64) (vets.Veterinarian, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, v := range r.s.vets {
		if v.ID == id {
			return v, nil
		}
	}
	return vets.Veterinarian{}, vets.ErrNotFound
}

func (r vetsRepo) List(ctx context.Context) ([]vets.Veterinarian, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]vets.Veterinarian, len(r.s.vets))
	copy(out, r.s.vets)
	return out, nil
}

func (r vetsRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	found := false
	for _, v := range r.s.vets {
		if v.ID == id {
			found = true
			break
		}
	}
	if !found {
		return vets.ErrNotFound
	}

	r.s.deleteVetLocked(id)
	return nil
}
