package stats

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"paw-n-care/internal/domain/appointments"
	"paw-n-care/internal/domain/billing"
	"paw-n-care/internal/domain/medrecords"
	"paw-n-care/internal/domain/pets"
	"paw-n-care/internal/domain/vets"
)

// Source son las lecturas que necesita el agregador. Cada adapter de storage
// las implementa; una falla acá es fatal y se propaga, nunca se devuelve un
// reporte vacío (misreportar estadísticas en silencio es peor que un 500).
type Source interface {
	ListVets(ctx context.Context) ([]vets.Veterinarian, error)
	ListPets(ctx context.Context) ([]pets.Pet, error)
	ListAppointments(ctx context.Context) ([]appointments.Appointment, error)
	ListMedicalRecords(ctx context.Context) ([]medrecords.MedicalRecord, error)
	ListBills(ctx context.Context) ([]billing.Bill, error)
}

type Aggregator struct {
	src Source
	now func() time.Time
}

func NewAggregator(src Source) *Aggregator {
	return &Aggregator{
		src: src,
		now: time.Now,
	}
}

// Compute arma el reporte completo. vetID == 0 selecciona el primer
// veterinario en orden del store; sin veterinarios, las métricas por vet
// quedan en cero.
func (a *Aggregator) Compute(ctx context.Context, vetID int64) (Report, error) {
	allVets, err := a.src.ListVets(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("stats: listing vets: %w", err)
	}
	allPets, err := a.src.ListPets(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("stats: listing pets: %w", err)
	}
	appts, err := a.src.ListAppointments(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("stats: listing appointments: %w", err)
	}
	records, err := a.src.ListMedicalRecords(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("stats: listing medical records: %w", err)
	}
	bills, err := a.src.ListBills(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("stats: listing bills: %w", err)
	}

	now := a.now()
	var r Report

	// --- selección de veterinario ---
	var selected *vets.Veterinarian
	if vetID != 0 {
		for i := range allVets {
			if allVets[i].ID == vetID {
				selected = &allVets[i]
				break
			}
		}
	} else if len(allVets) > 0 {
		selected = &allVets[0]
	}

	if selected != nil {
		r.SelectedVetID = selected.ID
		r.SelectedVetName = selected.FullName()

		vetApptCount := 0
		vetPetSet := map[int64]struct{}{}
		clinicPetSet := map[int64]struct{}{}
		apptVet := map[int64]int64{} // appointment -> vet, para facturación

		for _, ap := range appts {
			clinicPetSet[ap.PetID] = struct{}{}
			apptVet[ap.ID] = ap.VetID
			if ap.VetID == selected.ID {
				vetApptCount++
				vetPetSet[ap.PetID] = struct{}{}
			}
		}

		var vetBilling, clinicBilling float64
		for _, b := range bills {
			clinicBilling += b.TotalAmount
			if apptVet[b.AppointmentID] == selected.ID {
				vetBilling += b.TotalAmount
			}
		}

		r.VetAppointments = vetApptCount
		r.VetAppointmentPct = pct(float64(vetApptCount), float64(len(appts)))
		r.VetPetsManaged = len(vetPetSet)
		r.VetPetPct = pct(float64(len(vetPetSet)), float64(len(clinicPetSet)))
		r.VetBillingTotal = vetBilling
		r.VetBillingPct = pct(vetBilling, clinicBilling)
	}

	// --- clínica, ventanas temporales ---
	yearAgo := now.AddDate(-1, 0, 0)
	cutoff180 := now.AddDate(0, 0, -180)
	returning := map[int64]struct{}{}

	for _, ap := range appts {
		if ap.Date.Year() == now.Year() && ap.Date.Month() == now.Month() {
			r.AppointmentsThisMonth++
		}
		if !ap.Date.Before(cutoff180) {
			returning[ap.OwnerID] = struct{}{}
		}
		if !ap.Date.Before(yearAgo) {
			switch ap.Status {
			case appointments.StatusScheduled:
				r.ScheduledLastYear++
			case appointments.StatusCompleted:
				r.CompletedLastYear++
			case appointments.StatusCanceled:
				r.CanceledLastYear++
			}
		}
	}
	r.ReturningOwners = len(returning)

	r.MostFrequentSpecies = mostFrequentSpecies(allPets)
	r.AvgDogWeight, r.AvgCatWeight, r.AvgOtherWeight = meanWeights(allPets)
	r.MedicationPct = medicationPct(appts, records)
	r.TopVetByCompleted = topVetByCompleted(allVets, appts)
	r.TopDiagnoses = topN(records, 3, func(m medrecords.MedicalRecord) string { return m.Diagnosis })
	r.TopTreatments = topN(records, 3, func(m medrecords.MedicalRecord) string { return m.Treatment })

	// --- facturación ---
	var total float64
	for _, b := range bills {
		total += b.TotalAmount

		if b.PaidAt.Year() == now.Year() && b.PaidAt.Month() == now.Month() {
			r.RevenueThisMonth += b.TotalAmount
		}

		switch b.PaymentStatus {
		case billing.PaymentPaid:
			r.PaidCount++
		case billing.PaymentPending:
			r.PendingCount++
		case billing.PaymentOverdue:
			r.OverdueCount++
		}
		switch b.PaymentMethod {
		case billing.MethodCreditCard:
			r.CreditCardCount++
		case billing.MethodCash:
			r.CashCount++
		case billing.MethodBankTransfer:
			r.BankTransferCount++
		}
	}

	n := float64(len(bills))
	if len(bills) > 0 {
		r.AvgBillingAmount = total / n
	}
	r.PaidPct = pct(float64(r.PaidCount), n)
	r.PendingPct = pct(float64(r.PendingCount), n)
	r.OverduePct = pct(float64(r.OverdueCount), n)
	r.CreditCardPct = pct(float64(r.CreditCardCount), n)
	r.CashPct = pct(float64(r.CashCount), n)
	r.BankTransferPct = pct(float64(r.BankTransferCount), n)

	return r, nil
}

// mostFrequentSpecies aplica la política de empate: si las dos especies más
// frecuentes empatan, se reporta N/A con 0 en vez de elegir una arbitraria.
// Matching case-sensitive contra lo guardado.
func mostFrequentSpecies(allPets []pets.Pet) SpeciesCount {
	counts := map[string]int{}
	order := make([]string, 0)
	for _, p := range allPets {
		if _, seen := counts[p.Species]; !seen {
			order = append(order, p.Species)
		}
		counts[p.Species]++
	}

	best := 0
	for _, c := range counts {
		if c > best {
			best = c
		}
	}
	if best == 0 {
		return SpeciesCount{Species: "N/A", Count: 0}
	}

	winners := 0
	winner := ""
	for _, sp := range order {
		if counts[sp] == best {
			winners++
			winner = sp
		}
	}
	if winners > 1 {
		return SpeciesCount{Species: "N/A", Count: 0}
	}
	return SpeciesCount{Species: winner, Count: best}
}

func meanWeights(allPets []pets.Pet) (dog, cat, other float64) {
	var dogSum, catSum, otherSum float64
	var dogN, catN, otherN int

	for _, p := range allPets {
		switch p.Species {
		case "Dog":
			dogSum += p.Weight
			dogN++
		case "Cat":
			catSum += p.Weight
			catN++
		default:
			otherSum += p.Weight
			otherN++
		}
	}

	if dogN > 0 {
		dog = dogSum / float64(dogN)
	}
	if catN > 0 {
		cat = catSum / float64(catN)
	}
	if otherN > 0 {
		other = otherSum / float64(otherN)
	}
	return dog, cat, other
}

// medicationPct: porcentaje de citas cuya mascota tiene al menos un record
// con medicación prescripta.
func medicationPct(appts []appointments.Appointment, records []medrecords.MedicalRecord) int {
	medicated := map[int64]struct{}{}
	for _, m := range records {
		if m.PrescribedMedication != "" {
			medicated[m.PetID] = struct{}{}
		}
	}

	count := 0
	for _, ap := range appts {
		if _, ok := medicated[ap.PetID]; ok {
			count++
		}
	}
	return pct(float64(count), float64(len(appts)))
}

// topVetByCompleted: veterinario con más citas "Completed" (histórico, sin
// ventana). Empates se resuelven por orden del store (gana el primero).
func topVetByCompleted(allVets []vets.Veterinarian, appts []appointments.Appointment) string {
	completed := map[int64]int{}
	for _, ap := range appts {
		if ap.Status == appointments.StatusCompleted {
			completed[ap.VetID]++
		}
	}

	best := 0
	name := ""
	for _, v := range allVets {
		if c := completed[v.ID]; c > best {
			best = c
			name = v.FullName()
		}
	}
	return name
}

// topN: ranking por frecuencia. Empates quedan en orden de primera aparición
// (orden de iteración del store), que es determinístico.
func topN(records []medrecords.MedicalRecord, n int, key func(medrecords.MedicalRecord) string) []FreqEntry {
	counts := map[string]int{}
	order := make([]string, 0)
	for _, m := range records {
		k := key(m)
		if k == "" {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	entries := make([]FreqEntry, 0, len(order))
	for _, k := range order {
		entries = append(entries, FreqEntry{Value: k, Count: counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// pct redondea al entero más cercano y protege el denominador cero.
func pct(num, den float64) int {
	if den == 0 {
		return 0
	}
	return int(math.Round(100 * num / den))
}
