package medrecords

import "time"

// MedicalRecord es el registro de una visita médica.
// AppointmentID es opcional: un record puede cargarse sin cita asociada.
// PrescribedMedication y Notes vacíos significan "sin dato".
type MedicalRecord struct {
	ID int64

	AppointmentID *int64
	PetID         int64
	VetID         int64

	VisitedAt            time.Time
	Diagnosis            string
	Treatment            string
	PrescribedMedication string
	Notes                string
}
