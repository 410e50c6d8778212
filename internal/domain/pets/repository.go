package pets

import "context"

type Repository interface {
	Create(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id int64) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error)

	// Delete borra la mascota y en cascada sus appointments,
	// medical records y bills.
	Delete(ctx context.Context, id int64) error
}
