package stats

// SpeciesCount es la especie más frecuente. Si hay empate en el tope se
// reporta {"N/A", 0}: regla anti-ambigüedad, no un faltante.
type SpeciesCount struct {
	Species string `json:"species"`
	Count   int    `json:"count"`
}

// FreqEntry es una entrada de ranking por frecuencia (diagnósticos, tratamientos).
type FreqEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Report es el diccionario de métricas que consume el dashboard.
// Todos los porcentajes van redondeados a entero; denominador cero => 0.
type Report struct {
	SelectedVetID   int64  `json:"selected_vet_id"`
	SelectedVetName string `json:"selected_vet_name"`

	// Por veterinario seleccionado
	VetAppointments       int     `json:"vet_appointments"`
	VetAppointmentPct     int     `json:"vet_appointment_percentage"`
	VetPetsManaged        int     `json:"vet_pets_managed"`
	VetPetPct             int     `json:"vet_pet_percentage"`
	VetBillingTotal       float64 `json:"vet_billing_total"`
	VetBillingPct         int     `json:"vet_billing_percentage"`

	// Clínica, con ventana temporal
	AppointmentsThisMonth int          `json:"appointments_this_month"`
	ReturningOwners       int          `json:"returning_owners"`
	MostFrequentSpecies   SpeciesCount `json:"most_frequent_species"`
	MedicationPct         int          `json:"medication_percentage"`
	AvgDogWeight          float64      `json:"avg_dog_weight"`
	AvgCatWeight          float64      `json:"avg_cat_weight"`
	AvgOtherWeight        float64      `json:"avg_other_weight"`

	// Resultados de citas
	TopVetByCompleted string      `json:"top_vet_by_completed"`
	ScheduledLastYear int         `json:"scheduled_last_year"`
	CompletedLastYear int         `json:"completed_last_year"`
	CanceledLastYear  int         `json:"canceled_last_year"`
	TopDiagnoses      []FreqEntry `json:"top_3_diagnoses"`
	TopTreatments     []FreqEntry `json:"top_3_treatments"`

	// Facturación
	AvgBillingAmount float64 `json:"avg_billing_amount"`
	RevenueThisMonth float64 `json:"revenue_this_month"`

	PaidCount  int `json:"paid_count"`
	PaidPct    int `json:"paid_percentage"`
	PendingCount int `json:"pending_count"`
	PendingPct   int `json:"pending_percentage"`
	OverdueCount int `json:"overdue_count"`
	OverduePct   int `json:"overdue_percentage"`

	CreditCardCount   int `json:"credit_card_count"`
	CreditCardPct     int `json:"credit_card_percentage"`
	CashCount         int `json:"cash_count"`
	CashPct           int `json:"cash_percentage"`
	BankTransferCount int `json:"bank_transfer_count"`
	BankTransferPct   int `json:"bank_transfer_percentage"`
}
