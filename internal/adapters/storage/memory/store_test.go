package memory

import (
	"context"
	"testing"
	"time"

	"paw-n-care/internal/domain/appointments"
	"paw-n-care/internal/domain/billing"
	"paw-n-care/internal/domain/medrecords"
	"paw-n-care/internal/domain/owners"
	"paw-n-care/internal/domain/pets"
	"paw-n-care/internal/domain/vets"
	"paw-n-care/internal/search"
)

func seedClinic(t *testing.T, s *Store) (owners.Owner, pets.Pet, vets.Veterinarian) {
	t.Helper()
	ctx := context.Background()

	o, err := s.Owners().Create(ctx, owners.Owner{
		FirstName: "John", LastName: "Doe",
		Address: "123 Pet St", Phone: "1234567890", Email: "john@example.com",
		RegisteredAt: time.Now(),
	})
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}

	p, err := s.Pets().Create(ctx, pets.Pet{
		OwnerID: o.ID, Name: "Fluffy", Species: "Cat", Breed: "Persian",
		BirthDate: time.Now().AddDate(-3, 0, 0), Gender: pets.GenderFemale, Weight: 4.5,
	})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}

	v, err := s.Vets().Create(ctx, vets.Veterinarian{
		FirstName: "Jane", LastName: "Smith",
		Specialization: "General", LicenseNumber: "VET-001",
		Phone: "5550000000", Email: "jane@clinic.example",
	})
	if err != nil {
		t.Fatalf("create vet: %v", err)
	}

	return o, p, v
}

func TestStore_DeleteOwner_CascadesEverything(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	o, p, v := seedClinic(t, s)

	a1, err := s.Appointments().Create(ctx, appointments.Appointment{
		PetID: p.ID, OwnerID: o.ID, VetID: v.ID,
		Date: time.Now(), StartTime: "10:00", Reason: "Annual checkup",
		Status: appointments.StatusScheduled,
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	a2, err := s.Appointments().Create(ctx, appointments.Appointment{
		PetID: p.ID, OwnerID: o.ID, VetID: v.ID,
		Date: time.Now().AddDate(0, 0, 7), StartTime: "11:00", Reason: "Follow-up",
		Status: appointments.StatusScheduled,
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	if _, err := s.MedicalRecords().Create(ctx, medrecords.MedicalRecord{
		AppointmentID: &a1.ID, PetID: p.ID, VetID: v.ID,
		VisitedAt: time.Now(), Diagnosis: "otitis", Treatment: "drops",
	}); err != nil {
		t.Fatalf("create record: %v", err)
	}
	if _, err := s.Bills().Create(ctx, billing.Bill{
		AppointmentID: a1.ID, TotalAmount: 100,
		PaymentStatus: billing.PaymentPaid, PaymentMethod: billing.MethodCash,
		PaidAt: time.Now(),
	}); err != nil {
		t.Fatalf("create bill: %v", err)
	}

	if err := s.Owners().Delete(ctx, o.ID); err != nil {
		t.Fatalf("delete owner: %v", err)
	}

	// nada huérfano
	if list, _ := s.Owners().List(ctx); len(list) != 0 {
		t.Fatalf("expected 0 owners, got %d", len(list))
	}
	if list, _ := s.Pets().List(ctx); len(list) != 0 {
		t.Fatalf("expected 0 pets, got %d", len(list))
	}
	if list, _ := s.Appointments().List(ctx); len(list) != 0 {
		t.Fatalf("expected 0 appointments, got %d", len(list))
	}
	if list, _ := s.MedicalRecords().List(ctx); len(list) != 0 {
		t.Fatalf("expected 0 medical records, got %d", len(list))
	}
	if list, _ := s.Bills().List(ctx); len(list) != 0 {
		t.Fatalf("expected 0 bills, got %d", len(list))
	}

	// el vet no forma parte de la cascada del owner
	if list, _ := s.Vets().List(ctx); len(list) != 1 {
		t.Fatalf("expected vet to survive, got %d", len(list))
	}

	_ = a2 // borrado vía cascada, igual que a1
}

func TestStore_AppointmentRows_JoinRelations(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	o, p, v := seedClinic(t, s)

	if _, err := s.Appointments().Create(ctx, appointments.Appointment{
		PetID: p.ID, OwnerID: o.ID, VetID: v.ID,
		Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), StartTime: "10:30",
		Reason: "Annual checkup", Status: appointments.StatusScheduled,
	}); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	rows, err := s.Rows(ctx, search.EntityAppointment)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row["pet_name"] != "Fluffy" || row["owner_last_name"] != "Doe" || row["vet_last_name"] != "Smith" {
		t.Fatalf("join not applied: %v", row)
	}
}
