package owners

import "context"

type Repository interface {
	// Create asigna el ID (lo genera el store) y devuelve el owner persistido.
	Create(ctx context.Context, o Owner) (Owner, error)
	Update(ctx context.Context, o Owner) error
	GetByID(ctx context.Context, id int64) (Owner, error)
	List(ctx context.Context) ([]Owner, error)

	// Delete borra en cascada: pets del owner, sus appointments,
	// y los medical records / bills colgados de esos appointments.
	Delete(ctx context.Context, id int64) error
}
