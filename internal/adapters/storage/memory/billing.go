package memory

import (
	"context"

	"paw-n-care/internal/domain/billing"
)

type billsRepo struct {
	s *Store
}

func (r billsRepo) Create(ctx context.Context, b billing.Bill) (billing.Bill, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b.ID = r.s.nextID("bill")
	r.s.bills = append(r.s.bills, b)
	return b, nil
}

func (r billsRepo) Update(ctx context.Context, b billing.Bill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.bills {
		if r.s.bills[i].ID == b.ID {
			r.s.bills[i] = b
			return nil
		}
	}
	return billing.ErrNotFound
}

func (r billsRepo) GetByID(ctx context.Context, id int64) (billing.Bill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, b := range r.s.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return billing.Bill{}, billing.ErrNotFound
}

func (r billsRepo) List(ctx context.Context) ([]billing.Bill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]billing.Bill, len(r.s.bills))
	copy(out, r.s.bills)
	return out, nil
}
