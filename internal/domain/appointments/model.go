package appointments

import "time"

// Status define los estados canónicos de un appointment.
// El esquema original traía texto libre con "Canceled"/"Cancelled" mezclados;
// acá se normaliza a un solo set enumerado.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCanceled  Status = "Canceled"
)

// Appointment representa una cita: una mascota, su dueño y un veterinario.
type Appointment struct {
	ID int64

	PetID   int64
	OwnerID int64
	VetID   int64

	Date      time.Time // solo la parte fecha es significativa
	StartTime string    // HH:MM
	Reason    string
	Status    Status
}
