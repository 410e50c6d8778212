package vets

// Veterinarian representa a un veterinario de la clínica.
type Veterinarian struct {
	ID int64

	FirstName      string
	LastName       string
	Specialization string
	LicenseNumber  string
	Phone          string
	Email          string
}

// FullName es el atributo derivado que usan las estadísticas y la UI.
func (v Veterinarian) FullName() string {
	return v.FirstName + " " + v.LastName
}
