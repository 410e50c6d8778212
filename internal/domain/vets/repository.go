package vets

import "context"

type Repository interface {
	Create(ctx context.Context, v Veterinarian) (Veterinarian, error)
	Update(ctx context.Context, v Veterinarian) error
	GetByID(ctx context.Context, id int64) (Veterinarian, error)
	List(ctx context.Context) ([]Veterinarian, error)

	// Delete borra en cascada appointments (con sus records y bills)
	// y medical records del veterinario.
	Delete(ctx context.Context, id int64) error
}
