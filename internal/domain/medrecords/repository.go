package medrecords

import "context"

type Repository interface {
	Create(ctx context.Context, m MedicalRecord) (MedicalRecord, error)
	Update(ctx context.Context, m MedicalRecord) error
	GetByID(ctx context.Context, id int64) (MedicalRecord, error)
	List(ctx context.Context) ([]MedicalRecord, error)
}
