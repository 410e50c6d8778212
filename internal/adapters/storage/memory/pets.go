package memory

import (
	"context"

	"paw-n-care/internal/domain/pets"
)

type petsRepo struct {
	s *Store
}

func (r petsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = r.s.nextID("pet")
	r.s.pets = append(r.s.pets, p)
	return p, nil
}

func (r petsRepo) Update(ctx context.Context, p pets.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.pets {
		if r.s.pets[i].ID == p.ID {
			r.s.pets[i] = p
			return nil
		}
	}
	return pets.ErrNotFound
}

func (r petsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.pets {
		if p.ID == id {
			return p, nil
		}
	}
	return pets.Pet{}, pets.ErrNotFound
}

func (r petsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, len(r.s.pets))
	copy(out, r.s.pets)
	return out, nil
}

func (r petsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.s.pets {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r petsRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	found := false
	for _, p := range r.s.pets {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		return pets.ErrNotFound
	}

	r.s.deletePetLocked(id)
	return nil
}
