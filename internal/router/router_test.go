package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"paw-n-care/internal/adapters/storage/memory"
	"paw-n-care/internal/domain/auth"
	"paw-n-care/internal/platform/logger"
	"paw-n-care/internal/router"
)

func newTestServer(t *testing.T, store *memory.Store, devAuth bool) *httptest.Server {
	t.Helper()

	handler := router.NewRouter(router.Options{
		Backend: store,
		Log:     logger.New(logger.Options{Level: logger.Error}),
		DevAuth: devAuth,
	})
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_ClinicFlow(t *testing.T) {
	ts := newTestServer(t, memory.NewStore(), true)
	staff := "staff-1"

	// 1) Alta de owner, vet y pet
	ownerID := createEntity(t, ts.URL, staff, "/owners", map[string]any{
		"first_name":   "John",
		"last_name":    "Doe",
		"address":      "123 Main St",
		"phone_number": "5551234",
		"email":        "john@example.com",
	}, "owner_id")

	otherOwnerID := createEntity(t, ts.URL, staff, "/owners", map[string]any{
		"first_name":   "Jane",
		"last_name":    "Smith",
		"phone_number": "5555678",
		"email":        "jane@example.com",
	}, "owner_id")

	vetID := createEntity(t, ts.URL, staff, "/vets", map[string]any{
		"first_name":     "Sarah",
		"last_name":      "Connor",
		"specialization": "Surgery",
		"license_number": "VET-001",
		"email":          "sarah@clinic.example",
	}, "vet_id")

	petID := createEntity(t, ts.URL, staff, "/pets", map[string]any{
		"owner_id":      ownerID,
		"name":          "Fluffy",
		"species":       "Cat",
		"breed":         "Persian",
		"date_of_birth": "2020-05-01",
		"gender":        "Female",
		"weight":        4.2,
	}, "pet_id")

	// 2) Cita con owner equivocado: la mascota es de John, no de Jane
	{
		st, _ := doReq(t, ts.URL, "POST", "/appointments", staff, map[string]any{
			"pet_id":           petID,
			"owner_id":         otherOwnerID,
			"vet_id":           vetID,
			"appointment_date": "2025-06-10",
			"appointment_time": "10:30",
			"reason":           "Checkup",
			"status":           "Scheduled",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 for pet/owner mismatch, got %d", st)
		}
	}

	// 3) Cita válida
	apptID := createEntity(t, ts.URL, staff, "/appointments", map[string]any{
		"pet_id":           petID,
		"owner_id":         ownerID,
		"vet_id":           vetID,
		"appointment_date": "2025-06-10",
		"appointment_time": "10:30",
		"reason":           "Checkup",
		"status":           "Scheduled",
	}, "appointment_id")

	// 4) Record médico y factura colgados de la cita
	createEntity(t, ts.URL, staff, "/medical-records", map[string]any{
		"appointment_id":        apptID,
		"pet_id":                petID,
		"vet_id":                vetID,
		"visit_date":            "2025-06-10",
		"diagnosis":             "Dermatitis",
		"treatment":             "Topical cream",
		"prescribed_medication": "Antibiotics",
	}, "record_id")

	createEntity(t, ts.URL, staff, "/billing", map[string]any{
		"appointment_id": apptID,
		"total_amount":   100.0,
		"payment_status": "Paid",
		"payment_method": "Cash",
		"payment_date":   "2025-06-10",
	}, "bill_id")

	// 5) Búsqueda de citas por texto libre: "flu" matchea el nombre del pet
	{
		st, body := doReq(t, ts.URL, "GET", "/appointments?search-dropdown=all_categories&search-query=flu", staff, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 search, got %d body=%s", st, string(body))
		}
		var res struct {
			Results []map[string]any `json:"results"`
		}
		if err := json.Unmarshal(body, &res); err != nil {
			t.Fatalf("unmarshal search result: %v", err)
		}
		if len(res.Results) != 1 {
			t.Fatalf("expected 1 search hit, got %d", len(res.Results))
		}
		if got := res.Results[0]["pet_name"]; got != "Fluffy" {
			t.Fatalf("expected pet_name Fluffy, got %v", got)
		}
	}

	// 6) Categoría desconocida: no filtra, devuelve todo
	{
		st, body := doReq(t, ts.URL, "GET", "/appointments?search-dropdown=nope&search-query=zzz", staff, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 unknown category, got %d body=%s", st, string(body))
		}
		var res struct {
			Results []map[string]any `json:"results"`
		}
		_ = json.Unmarshal(body, &res)
		if len(res.Results) != 1 {
			t.Fatalf("unknown category should not filter, got %d rows", len(res.Results))
		}
	}

	// 7) Estadísticas sobre los datos cargados
	{
		st, body := doReq(t, ts.URL, "GET", "/statistics", staff, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 statistics, got %d body=%s", st, string(body))
		}
		var rep struct {
			VetAppointments int     `json:"vet_appointments"`
			PaidCount       int     `json:"paid_count"`
			AvgBilling      float64 `json:"avg_billing_amount"`
			Species         struct {
				Species string `json:"species"`
			} `json:"most_frequent_species"`
		}
		if err := json.Unmarshal(body, &rep); err != nil {
			t.Fatalf("unmarshal report: %v", err)
		}
		if rep.VetAppointments != 1 {
			t.Fatalf("expected 1 vet appointment, got %d", rep.VetAppointments)
		}
		if rep.PaidCount != 1 {
			t.Fatalf("expected 1 paid bill, got %d", rep.PaidCount)
		}
		if rep.AvgBilling != 100 {
			t.Fatalf("expected avg billing 100, got %v", rep.AvgBilling)
		}
		if rep.Species.Species != "Cat" {
			t.Fatalf("expected most frequent species Cat, got %q", rep.Species.Species)
		}
	}

	// 8) Borrar el owner arrastra pet, cita, record y bill
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/owners/"+itoa(ownerID), staff, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete owner, got %d", st)
		}
	}
	for _, path := range []string{
		"/pets/" + itoa(petID),
		"/appointments/" + itoa(apptID),
	} {
		st, _ := doReq(t, ts.URL, "GET", path, staff, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for %s after cascade, got %d", path, st)
		}
	}
}

func TestHTTP_RequiresIdentity(t *testing.T) {
	ts := newTestServer(t, memory.NewStore(), true)

	// sin X-Debug-User-ID no hay claims y los handlers rechazan
	st, _ := doReq(t, ts.URL, "GET", "/owners", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", st)
	}
}

func TestHTTP_LoginLogoutFlow(t *testing.T) {
	store := memory.NewStore()

	// la credencial se siembra por el mismo repo que usa el router
	seedSvc := auth.NewService(store.Users())
	if _, err := seedSvc.Register(context.Background(), "reception", "sup3rsecret"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	ts := newTestServer(t, store, false)

	// sin token => 401
	{
		st, _ := doReq(t, ts.URL, "GET", "/owners", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without token, got %d", st)
		}
	}

	// password incorrecta => 401 genérico
	{
		st, _ := doReq(t, ts.URL, "POST", "/login", "", map[string]any{
			"username": "reception",
			"password": "wrong",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 bad password, got %d", st)
		}
	}

	// login ok => token de sesión
	var token string
	{
		st, body := doReq(t, ts.URL, "POST", "/login", "", map[string]any{
			"username": "reception",
			"password": "sup3rsecret",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
		}
		var resp struct {
			Token string `json:"token"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Token == "" {
			t.Fatalf("login: missing token body=%s", string(body))
		}
		token = resp.Token
	}

	// con token => acceso
	{
		st, _ := doBearerReq(t, ts.URL, "GET", "/owners", token)
		if st != http.StatusOK {
			t.Fatalf("expected 200 with token, got %d", st)
		}
	}

	// logout invalida la sesión
	{
		st, _ := doBearerReq(t, ts.URL, "POST", "/logout", token)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 logout, got %d", st)
		}
		st, _ = doBearerReq(t, ts.URL, "GET", "/owners", token)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 after logout, got %d", st)
		}
	}
}

func createEntity(t *testing.T, baseURL, userID, path string, payload map[string]any, idField string) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create %s, got %d body=%s", path, st, string(body))
	}

	var resp map[string]any
	_ = json.Unmarshal(body, &resp)
	id, ok := resp[idField].(float64)
	if !ok || id == 0 {
		t.Fatalf("create %s: missing %s body=%s", path, idField, string(body))
	}
	return int64(id)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func doBearerReq(t *testing.T, baseURL, method, path, token string) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, baseURL+path, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
