package memory

import (
	"context"

	"paw-n-care/internal/domain/owners"
)

type ownersRepo struct {
	s *Store
}

func (r ownersRepo) Create(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o.ID = r.s.nextID("owner")
	r.s.owners = append(r.s.owners, o)
	return o, nil
}

func (r ownersRepo) Update(ctx context.Context, o owners.Owner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.owners {
		if r.s.owners[i].ID == o.ID {
			r.s.owners[i] = o
			return nil
		}
	}
	return owners.ErrNotFound
}

func (r ownersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, o := range r.s.owners {
		if o.ID == id {
			return o, nil
		}
	}
	return owners.Owner{}, owners.ErrNotFound
}

func (r ownersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]owners.Owner, len(r.s.owners))
	copy(out, r.s.owners)
	return out, nil
}

func (r ownersRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	found := false
	for _, o := range r.s.owners {
		if o.ID == id {
			found = true
			break
		}
	}
	if !found {
		return owners.ErrNotFound
	}

	r.s.deleteOwnerLocked(id)
	return nil
}
