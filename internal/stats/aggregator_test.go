package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"paw-n-care/internal/domain/appointments"
	"paw-n-care/internal/domain/billing"
	"paw-n-care/internal/domain/medrecords"
	"paw-n-care/internal/domain/pets"
	"paw-n-care/internal/domain/vets"
)

// -------------------------
// Test source (in-memory)
// -------------------------

type testSource struct {
	vets    []vets.Veterinarian
	pets    []pets.Pet
	appts   []appointments.Appointment
	records []medrecords.MedicalRecord
	bills   []billing.Bill

	failWith error
}

func (s *testSource) ListVets(ctx context.Context) ([]vets.Veterinarian, error) {
	return s.vets, s.failWith
}
func (s *testSource) ListPets(ctx context.Context) ([]pets.Pet, error) {
	return s.pets, s.failWith
}
func (s *testSource) ListAppointments(ctx context.Context) ([]appointments.Appointment, error) {
	return s.appts, s.failWith
}
func (s *testSource) ListMedicalRecords(ctx context.Context) ([]medrecords.MedicalRecord, error) {
	return s.records, s.failWith
}
func (s *testSource) ListBills(ctx context.Context) ([]billing.Bill, error) {
	return s.bills, s.failWith
}

func newAggregator(src Source, now time.Time) *Aggregator {
	a := NewAggregator(src)
	a.now = func() time.Time { return now }
	return a
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// -------------------------
// Tests
// -------------------------

func TestCompute_EmptyStore_AllZeros(t *testing.T) {
	a := newAggregator(&testSource{}, testNow)

	r, err := a.Compute(context.Background(), 0)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	// todo porcentaje con denominador cero devuelve exactamente 0
	for name, got := range map[string]int{
		"vet_appointment_percentage": r.VetAppointmentPct,
		"vet_pet_percentage":         r.VetPetPct,
		"vet_billing_percentage":     r.VetBillingPct,
		"medication_percentage":      r.MedicationPct,
		"paid_percentage":            r.PaidPct,
		"pending_percentage":         r.PendingPct,
		"overdue_percentage":         r.OverduePct,
		"credit_card_percentage":     r.CreditCardPct,
		"cash_percentage":            r.CashPct,
		"bank_transfer_percentage":   r.BankTransferPct,
	} {
		if got != 0 {
			t.Fatalf("%s: expected 0, got %d", name, got)
		}
	}
	if r.AvgBillingAmount != 0 {
		t.Fatalf("avg_billing_amount: expected 0, got %v", r.AvgBillingAmount)
	}
	if r.SelectedVetID != 0 || r.SelectedVetName != "" {
		t.Fatalf("expected null vet selection, got %d %q", r.SelectedVetID, r.SelectedVetName)
	}
	if r.TopVetByCompleted != "" {
		t.Fatalf("expected empty top vet, got %q", r.TopVetByCompleted)
	}
	if r.MostFrequentSpecies.Species != "N/A" || r.MostFrequentSpecies.Count != 0 {
		t.Fatalf("expected N/A species, got %+v", r.MostFrequentSpecies)
	}
	if r.AvgDogWeight != 0 || r.AvgCatWeight != 0 || r.AvgOtherWeight != 0 {
		t.Fatalf("expected zero mean weights")
	}
}

func TestCompute_SpeciesTiePolicy(t *testing.T) {
	// {Dog:3, Cat:3, Bird:1} => N/A / 0
	src := &testSource{pets: speciesPets(map[string]int{"Dog": 3, "Cat": 3, "Bird": 1})}
	r, err := newAggregator(src, testNow).Compute(context.Background(), 0)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if r.MostFrequentSpecies.Species != "N/A" || r.MostFrequentSpecies.Count != 0 {
		t.Fatalf("expected N/A on tie, got %+v", r.MostFrequentSpecies)
	}

	// {Dog:5, Cat:3} => Dog / 5
	src = &testSource{pets: speciesPets(map[string]int{"Dog": 5, "Cat": 3})}
	r, err = newAggregator(src, testNow).Compute(context.Background(), 0)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if r.MostFrequentSpecies.Species != "Dog" || r.MostFrequentSpecies.Count != 5 {
		t.Fatalf("expected Dog/5, got %+v", r.MostFrequentSpecies)
	}
}

func TestCompute_TopDiagnoses_Stability(t *testing.T) {
	// frecuencias 5,5,3,2,1 => exactamente 3 entradas, counts no crecientes,
	// tope correcto.
	var records []medrecords.MedicalRecord
	add := func(diag string, n int) {
		for i := 0; i < n; i++ {
			records = append(records, medrecords.MedicalRecord{
				PetID: 1, VetID: 1, VisitedAt: testNow,
				Diagnosis: diag, Treatment: "rest",
			})
		}
	}
	add("otitis", 5)
	add("dermatitis", 5)
	add("gastritis", 3)
	add("fracture", 2)
	add("allergy", 1)

	r, err := newAggregator(&testSource{records: records}, testNow).Compute(context.Background(), 0)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if len(r.TopDiagnoses) != 3 {
		t.Fatalf("expected 3 diagnoses, got %d", len(r.TopDiagnoses))
	}
	if r.TopDiagnoses[0].Count != 5 {
		t.Fatalf("expected top count 5, got %d", r.TopDiagnoses[0].Count)
	}
	for i := 1; i < len(r.TopDiagnoses); i++ {
		if r.TopDiagnoses[i].Count > r.TopDiagnoses[i-1].Count {
			t.Fatalf("counts not non-increasing: %+v", r.TopDiagnoses)
		}
	}
}

func TestCompute_BillingBreakdown(t *testing.T) {
	src := &testSource{
		bills: []billing.Bill{
			{ID: 1, AppointmentID: 1, TotalAmount: 100, PaymentStatus: billing.PaymentPaid, PaymentMethod: billing.MethodCash, PaidAt: testNow},
			{ID: 2, AppointmentID: 2, TotalAmount: 50, PaymentStatus: billing.PaymentPending, PaymentMethod: billing.MethodCreditCard, PaidAt: testNow},
		},
	}

	r, err := newAggregator(src, testNow).Compute(context.Background(), 0)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if r.PaidPct != 50 || r.PendingPct != 50 || r.OverduePct != 0 {
		t.Fatalf("expected 50/50/0, got %d/%d/%d", r.PaidPct, r.PendingPct, r.OverduePct)
	}
	if r.AvgBillingAmount != 75 {
		t.Fatalf("expected avg 75, got %v", r.AvgBillingAmount)
	}
	if r.CashPct != 50 || r.CreditCardPct != 50 || r.BankTransferPct != 0 {
		t.Fatalf("unexpected method pcts: %d/%d/%d", r.CashPct, r.CreditCardPct, r.BankTransferPct)
	}
	// ambos bills pagados este mes
	if r.RevenueThisMonth != 150 {
		t.Fatalf("expected revenue 150, got %v", r.RevenueThisMonth)
	}
}

func TestCompute_PerVetMetrics_AndDefaultSelection(t *testing.T) {
	src := &testSource{
		vets: []vets.Veterinarian{
			{ID: 1, FirstName: "Jane", LastName: "Smith"},
			{ID: 2, FirstName: "Bob", LastName: "Stone"},
		},
		pets: []pets.Pet{
			{ID: 1, OwnerID: 1, Species: "Cat", Weight: 4},
			{ID: 2, OwnerID: 2, Species: "Dog", Weight: 20},
			{ID: 3, OwnerID: 3, Species: "Dog", Weight: 10},
		},
		appts: []appointments.Appointment{
			{ID: 1, PetID: 1, OwnerID: 1, VetID: 1, Date: testNow.AddDate(0, 0, -1), Status: appointments.StatusCompleted},
			{ID: 2, PetID: 2, OwnerID: 2, VetID: 1, Date: testNow.AddDate(0, 0, -2), Status: appointments.StatusCompleted},
			{ID: 3, PetID: 3, OwnerID: 3, VetID: 2, Date: testNow.AddDate(0, 0, -3), Status: appointments.StatusScheduled},
			{ID: 4, PetID: 1, OwnerID: 1, VetID: 1, Date: testNow.AddDate(-2, 0, 0), Status: appointments.StatusCanceled},
		},
		bills: []billing.Bill{
			{ID: 1, AppointmentID: 1, TotalAmount: 100, PaymentStatus: billing.PaymentPaid, PaymentMethod: billing.MethodCash, PaidAt: testNow.AddDate(0, -2, 0)},
			{ID: 2, AppointmentID: 3, TotalAmount: 100, PaymentStatus: billing.PaymentPaid, PaymentMethod: billing.MethodCash, PaidAt: testNow.AddDate(0, -2, 0)},
		},
	}

	// sin vet explícito: selecciona el primero en orden del store
	r, err := newAggregator(src, testNow).Compute(context.Background(), 0)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if r.SelectedVetID != 1 || r.SelectedVetName != "Jane Smith" {
		t.Fatalf("expected default vet Jane Smith, got %d %q", r.SelectedVetID, r.SelectedVetName)
	}
	if r.VetAppointments != 3 {
		t.Fatalf("expected 3 vet appointments, got %d", r.VetAppointments)
	}
	if r.VetAppointmentPct != 75 {
		t.Fatalf("expected 75%%, got %d", r.VetAppointmentPct)
	}
	if r.VetPetsManaged != 2 {
		t.Fatalf("expected 2 pets managed, got %d", r.VetPetsManaged)
	}
	// 2 de 3 mascotas distintas con citas en la clínica => 67%
	if r.VetPetPct != 67 {
		t.Fatalf("expected 67%%, got %d", r.VetPetPct)
	}
	if r.VetBillingTotal != 100 || r.VetBillingPct != 50 {
		t.Fatalf("expected billing 100 / 50%%, got %v / %d", r.VetBillingTotal, r.VetBillingPct)
	}

	// histórico: Jane tiene 2 Completed, Bob 0
	if r.TopVetByCompleted != "Jane Smith" {
		t.Fatalf("expected Jane Smith, got %q", r.TopVetByCompleted)
	}

	// ventana anual: la cita de hace 2 años queda afuera
	if r.ScheduledLastYear != 1 || r.CompletedLastYear != 2 || r.CanceledLastYear != 0 {
		t.Fatalf("unexpected status counts: %d/%d/%d", r.ScheduledLastYear, r.CompletedLastYear, r.CanceledLastYear)
	}

	// returning owners: 3 dueños distintos con citas en los últimos 180 días
	if r.ReturningOwners != 3 {
		t.Fatalf("expected 3 returning owners, got %d", r.ReturningOwners)
	}

	// este mes (junio 2025): citas de hace 1, 2 y 3 días
	if r.AppointmentsThisMonth != 3 {
		t.Fatalf("expected 3 appointments this month, got %d", r.AppointmentsThisMonth)
	}
	// revenue del mes: ambos bills se pagaron hace 2 meses
	if r.RevenueThisMonth != 0 {
		t.Fatalf("expected 0 revenue this month, got %v", r.RevenueThisMonth)
	}

	if r.AvgDogWeight != 15 || r.AvgCatWeight != 4 || r.AvgOtherWeight != 0 {
		t.Fatalf("unexpected mean weights: %v/%v/%v", r.AvgDogWeight, r.AvgCatWeight, r.AvgOtherWeight)
	}
}

func TestCompute_ExplicitVetSelection(t *testing.T) {
	src := &testSource{
		vets: []vets.Veterinarian{
			{ID: 1, FirstName: "Jane", LastName: "Smith"},
			{ID: 2, FirstName: "Bob", LastName: "Stone"},
		},
		appts: []appointments.Appointment{
			{ID: 1, PetID: 1, OwnerID: 1, VetID: 2, Date: testNow, Status: appointments.StatusScheduled},
		},
	}

	r, err := newAggregator(src, testNow).Compute(context.Background(), 2)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	if r.SelectedVetID != 2 || r.SelectedVetName != "Bob Stone" {
		t.Fatalf("expected Bob Stone, got %d %q", r.SelectedVetID, r.SelectedVetName)
	}
	if r.VetAppointments != 1 || r.VetAppointmentPct != 100 {
		t.Fatalf("expected 1 / 100%%, got %d / %d", r.VetAppointments, r.VetAppointmentPct)
	}
}

func TestCompute_MedicationPercentage(t *testing.T) {
	med := "Amoxicillin"
	src := &testSource{
		pets: []pets.Pet{{ID: 1, Species: "Dog"}, {ID: 2, Species: "Cat"}},
		appts: []appointments.Appointment{
			{ID: 1, PetID: 1, OwnerID: 1, VetID: 1, Date: testNow, Status: appointments.StatusCompleted},
			{ID: 2, PetID: 2, OwnerID: 2, VetID: 1, Date: testNow, Status: appointments.StatusCompleted},
		},
		records: []medrecords.MedicalRecord{
			{ID: 1, PetID: 1, VetID: 1, VisitedAt: testNow, Diagnosis: "otitis", Treatment: "drops", PrescribedMedication: med},
			{ID: 2, PetID: 2, VetID: 1, VisitedAt: testNow, Diagnosis: "checkup", Treatment: "none"},
		},
	}

	r, err := newAggregator(src, testNow).Compute(context.Background(), 0)
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}
	// solo la mascota 1 tiene medicación prescripta => 1 de 2 citas
	if r.MedicationPct != 50 {
		t.Fatalf("expected 50%%, got %d", r.MedicationPct)
	}
}

func TestCompute_StoreFailure_Propagates(t *testing.T) {
	boom := errors.New("store down")
	_, err := newAggregator(&testSource{failWith: boom}, testNow).Compute(context.Background(), 0)
	if err == nil || !errors.Is(err, boom) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func speciesPets(counts map[string]int) []pets.Pet {
	// orden determinístico para que el fixture no dependa del orden del map
	species := []string{"Dog", "Cat", "Bird", "Rabbit"}
	var out []pets.Pet
	id := int64(1)
	for _, sp := range species {
		for i := 0; i < counts[sp]; i++ {
			out = append(out, pets.Pet{ID: id, OwnerID: 1, Species: sp, Weight: 5})
			id++
		}
	}
	return out
}
