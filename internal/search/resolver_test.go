package search

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Fixture compartida: un appointment de Fluffy (Cat) con Jane Smith.
func appointmentRows() []Row {
	return []Row{
		{
			"appointment_id":   int64(1),
			"pet_id":           int64(1),
			"pet_name":         "Fluffy",
			"owner_id":         int64(1),
			"owner_first_name": "John",
			"owner_last_name":  "Doe",
			"vet_id":           int64(1),
			"vet_first_name":   "Jane",
			"vet_last_name":    "Smith",
			"appointment_date": day(2025, 3, 10),
			"appointment_time": "10:30",
			"reason":           "Annual checkup",
			"status":           "Scheduled",
		},
		{
			"appointment_id":   int64(2),
			"pet_id":           int64(2),
			"pet_name":         "Rex",
			"owner_id":         int64(2),
			"owner_first_name": "Mary",
			"owner_last_name":  "Major",
			"vet_id":           int64(1),
			"vet_first_name":   "Jane",
			"vet_last_name":    "Smith",
			"appointment_date": day(2025, 4, 2),
			"appointment_time": "09:00",
			"reason":           "Vaccination",
			"status":           "Completed",
		},
	}
}

func appointmentConfig(t *testing.T) Config {
	t.Helper()
	cfg, ok := DefaultRegistry().Config(EntityAppointment)
	if !ok {
		t.Fatalf("missing appointment config")
	}
	return cfg
}

func TestResolve_EmptyQuery_ReturnsEverythingProjected(t *testing.T) {
	cfg := appointmentConfig(t)
	rows := appointmentRows()

	res := Resolve(rows, AllCategories, "", cfg)
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}
	// orden del store preservado
	if res.Rows[0]["appointment_id"] != int64(1) || res.Rows[1]["appointment_id"] != int64(2) {
		t.Fatalf("expected store order, got %v / %v", res.Rows[0]["appointment_id"], res.Rows[1]["appointment_id"])
	}
	// proyección exacta: solo values_fields
	if len(res.Rows[0]) != len(cfg.ValuesFields) {
		t.Fatalf("expected %d projected fields, got %d", len(cfg.ValuesFields), len(res.Rows[0]))
	}
}

func TestResolve_AllCategories_CaseInsensitiveSubstring(t *testing.T) {
	cfg := appointmentConfig(t)

	for _, q := range []string{"fluffy", "FLUFFY", "fLuFfY", "luff"} {
		res := Resolve(appointmentRows(), AllCategories, q, cfg)
		if len(res.Rows) != 1 {
			t.Fatalf("query %q: expected 1 row, got %d", q, len(res.Rows))
		}
		if res.Rows[0]["appointment_id"] != int64(1) {
			t.Fatalf("query %q: expected appointment 1, got %v", q, res.Rows[0]["appointment_id"])
		}
	}
}

func TestResolve_AllCategories_NonDateQuery_SkipsDateFieldSilently(t *testing.T) {
	cfg := appointmentConfig(t)

	// "checkup" no parsea como fecha: el campo appointment_date no aporta
	// cláusula, pero los campos texto sí deben seguir matcheando.
	res := Resolve(appointmentRows(), AllCategories, "checkup", cfg)
	if len(res.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(res.Rows))
	}
	if res.Rows[0]["reason"] != "Annual checkup" {
		t.Fatalf("unexpected row: %v", res.Rows[0])
	}
}

func TestResolve_AllCategories_DateQuery_MatchesDateField(t *testing.T) {
	cfg := appointmentConfig(t)

	res := Resolve(appointmentRows(), AllCategories, "2025-04-02", cfg)
	if len(res.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(res.Rows))
	}
	if res.Rows[0]["appointment_id"] != int64(2) {
		t.Fatalf("expected appointment 2, got %v", res.Rows[0]["appointment_id"])
	}
}

func TestResolve_DateCategory_InvalidDate_IsWildcardNotZero(t *testing.T) {
	cfg := appointmentConfig(t)

	// fecha inválida sobre categoría fecha => devuelve TODO, no cero
	res := Resolve(appointmentRows(), "appointment_date", "not-a-date", cfg)
	if len(res.Rows) != 2 {
		t.Fatalf("expected wildcard (2 rows), got %d", len(res.Rows))
	}
}

func TestResolve_DateCategory_ValidDate_ExactMatch(t *testing.T) {
	cfg := appointmentConfig(t)

	res := Resolve(appointmentRows(), "appointment_date", "2025-03-10", cfg)
	if len(res.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(res.Rows))
	}
	if res.Rows[0]["appointment_id"] != int64(1) {
		t.Fatalf("expected appointment 1, got %v", res.Rows[0]["appointment_id"])
	}
}

func TestResolve_SingleCategory_Substring(t *testing.T) {
	cfg := appointmentConfig(t)

	res := Resolve(appointmentRows(), "status", "sched", cfg)
	if len(res.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(res.Rows))
	}

	// la categoría mapea al campo físico, no al nombre lógico
	res = Resolve(appointmentRows(), "owner_name", "major", cfg)
	if len(res.Rows) != 1 || res.Rows[0]["owner_last_name"] != "Major" {
		t.Fatalf("expected Major row, got %v", res.Rows)
	}
}

func TestResolve_UnknownCategory_Passthrough(t *testing.T) {
	cfg := appointmentConfig(t)

	res := Resolve(appointmentRows(), "no_such_category", "whatever", cfg)
	if len(res.Rows) != 2 {
		t.Fatalf("expected unfiltered (2 rows), got %d", len(res.Rows))
	}
	if res.Category != "no_such_category" || res.Query != "whatever" {
		t.Fatalf("expected echo of category/query, got %q %q", res.Category, res.Query)
	}
}

func TestResolve_Projection_OnlyValuesFields(t *testing.T) {
	cfg := appointmentConfig(t)

	rows := appointmentRows()
	rows[0]["internal_only"] = "should not leak"

	res := Resolve(rows, AllCategories, "fluffy", cfg)
	if _, leaked := res.Rows[0]["internal_only"]; leaked {
		t.Fatalf("projection leaked a non-values field")
	}
	if res.Columns[0] != "appointment_id" {
		t.Fatalf("expected columns to follow values_fields order, got %v", res.Columns)
	}
}

func TestResolve_OwnerConfig_PhoneCategory(t *testing.T) {
	cfg, _ := DefaultRegistry().Config(EntityOwner)

	rows := []Row{
		{"owner_id": int64(1), "first_name": "John", "last_name": "Doe", "address": "123 Pet St", "phone_number": "1234567890", "email": "john@example.com", "registration_date": day(2025, 1, 5)},
		{"owner_id": int64(2), "first_name": "Ana", "last_name": "Silva", "address": "9 Bird Ave", "phone_number": "5550000000", "email": "ana@example.com", "registration_date": day(2025, 2, 6)},
	}

	res := Resolve(rows, "phone", "555", cfg)
	if len(res.Rows) != 1 || res.Rows[0]["owner_id"] != int64(2) {
		t.Fatalf("expected owner 2, got %v", res.Rows)
	}
}
