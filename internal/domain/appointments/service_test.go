package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"paw-n-care/internal/domain/owners"
	"paw-n-care/internal/domain/pets"
	"paw-n-care/internal/domain/vets"
)

// -------------------------
// Test repo y lookups (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Appointment
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Appointment{}}
}

func (r *testRepo) Create(ctx context.Context, a Appointment) (Appointment, error) {
	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a, nil
}

func (r *testRepo) Update(ctx context.Context, a Appointment) error {
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Appointment, error) {
	out := make([]Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

type testPets map[int64]pets.Pet

func (m testPets) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	p, ok := m[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

type testOwners map[int64]owners.Owner

func (m testOwners) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	o, ok := m[id]
	if !ok {
		return owners.Owner{}, owners.ErrNotFound
	}
	return o, nil
}

type testVets map[int64]vets.Veterinarian

func (m testVets) GetByID(ctx context.Context, id int64) (vets.Veterinarian, error) {
	v, ok := m[id]
	if !ok {
		return vets.Veterinarian{}, vets.ErrNotFound
	}
	return v, nil
}

func newFixtureService() *Service {
	return NewService(
		newTestRepo(),
		testPets{1: {ID: 1, OwnerID: 10, Name: "Fluffy"}},
		testOwners{10: {ID: 10, FirstName: "John", LastName: "Doe"}, 11: {ID: 11}},
		testVets{20: {ID: 20, FirstName: "Sarah"}},
	)
}

func validInput() CreateInput {
	return CreateInput{
		PetID:     1,
		OwnerID:   10,
		VetID:     20,
		Date:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "10:30",
		Reason:    "Checkup",
		Status:    "Scheduled",
	}
}

func TestCreate_OK(t *testing.T) {
	svc := newFixtureService()

	a, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if a.Status != StatusScheduled {
		t.Fatalf("expected Scheduled, got %q", a.Status)
	}
}

func TestCreate_PetOfAnotherOwner(t *testing.T) {
	svc := newFixtureService()

	in := validInput()
	in.OwnerID = 11 // existe, pero no es el dueño de Fluffy
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrOwnerMismatch) {
		t.Fatalf("expected ErrOwnerMismatch, got %v", err)
	}
}

func TestCreate_MissingReferences(t *testing.T) {
	svc := newFixtureService()

	in := validInput()
	in.PetID = 99
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected pets.ErrNotFound, got %v", err)
	}

	in = validInput()
	in.VetID = 99
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, vets.ErrNotFound) {
		t.Fatalf("expected vets.ErrNotFound, got %v", err)
	}
}

func TestCreate_RejectsBadTimeAndStatus(t *testing.T) {
	svc := newFixtureService()

	in := validInput()
	in.StartTime = "25:99"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad time, got %v", err)
	}

	in = validInput()
	in.Status = "Done"
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad status, got %v", err)
	}
}

func TestParseStatus_AcceptsBothCancelSpellings(t *testing.T) {
	for _, in := range []string{"Canceled", "Cancelled"} {
		st, ok := ParseStatus(in)
		if !ok || st != StatusCanceled {
			t.Fatalf("ParseStatus(%q) = %q, %v", in, st, ok)
		}
	}
	if _, ok := ParseStatus("canceled"); ok {
		t.Fatal("status matching is exact, lowercase should fail")
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	svc := newFixtureService()

	a, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := "Completed"
	updated, err := svc.Update(context.Background(), a.ID, UpdateInput{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Fatalf("expected Completed, got %q", updated.Status)
	}
	if updated.Reason != a.Reason {
		t.Fatalf("reason should be untouched, got %q", updated.Reason)
	}
}
