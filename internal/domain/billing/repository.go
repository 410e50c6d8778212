package billing

import "context"

type Repository interface {
	Create(ctx context.Context, b Bill) (Bill, error)
	Update(ctx context.Context, b Bill) error
	GetByID(ctx context.Context, id int64) (Bill, error)
	List(ctx context.Context) ([]Bill, error)
}
