package memory

import (
	"context"

	"paw-n-care/internal/domain/medrecords"
)

type recordsRepo struct {
	s *Store
}

func (r recordsRepo) Create(ctx context.Context, m medrecords.MedicalRecord) (medrecords.MedicalRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m.ID = r.s.nextID("medical_record")
	r.s.records = append(r.s.records, m)
	return m, nil
}

func (r recordsRepo) Update(ctx context.Context, m medrecords.MedicalRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.records {
		if r.s.records[i].ID == m.ID {
			r.s.records[i] = m
			return nil
		}
	}
	return medrecords.ErrNotFound
}

func (r recordsRepo) GetByID(ctx context.Context, id int64) (medrecords.MedicalRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, m := range r.s.records {
		if m.ID == id {
			return m, nil
		}
	}
	return medrecords.MedicalRecord{}, medrecords.ErrNotFound
}

func (r recordsRepo) List(ctx context.Context) ([]medrecords.MedicalRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]medrecords.MedicalRecord, len(r.s.records))
	copy(out, r.s.records)
	return out, nil
}
