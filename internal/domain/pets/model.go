package pets

import "time"

// Gender define el sexo de la mascota.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Pet representa una mascota registrada en la clínica.
// El species/breed queda como texto libre: los datos históricos traen
// casing inconsistente y las estadísticas lo comparan case-sensitive
// a propósito (riesgo de calidad de datos conocido, no se corrige acá).
type Pet struct {
	ID      int64
	OwnerID int64

	Name      string
	Species   string
	Breed     string
	BirthDate time.Time
	Gender    Gender
	Weight    float64
}
