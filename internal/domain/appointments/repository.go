package appointments

import "context"

type Repository interface {
	Create(ctx context.Context, a Appointment) (Appointment, error)
	Update(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id int64) (Appointment, error)
	List(ctx context.Context) ([]Appointment, error)

	// Delete borra la cita y en cascada sus medical records y bills.
	Delete(ctx context.Context, id int64) error
}
