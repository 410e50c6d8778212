package search

import "context"

// Kind distingue cómo se filtra un campo: substring (texto) o igualdad de fecha.
type Kind int

const (
	KindText Kind = iota
	KindDate
)

// Field es un descriptor tipado de campo buscable.
// Name es la clave física de la columna en el Row aplanado
// (puede venir de una relación, ej. pet_name en un appointment).
type Field struct {
	Name string
	Kind Kind
}

// Entity identifica cada tipo de registro buscable.
type Entity string

const (
	EntityAppointment   Entity = "appointment"
	EntityMedicalRecord Entity = "medical_record"
	EntityBilling       Entity = "billing"
	EntityPet           Entity = "pet"
	EntityOwner         Entity = "owner"
)

// Row es un registro aplanado: las relaciones de select_related ya vienen
// resueltas como claves propias (pet_name, owner_last_name, etc.).
type Row map[string]any

// RowSource entrega los rows base de una entidad, con los joins de
// SelectRelated ya hechos y en orden de inserción del store.
type RowSource interface {
	Rows(ctx context.Context, entity Entity) ([]Row, error)
}
