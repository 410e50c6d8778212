package medrecords

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"paw-n-care/internal/domain/appointments"
	"paw-n-care/internal/domain/pets"
	"paw-n-care/internal/domain/vets"
	"paw-n-care/internal/middleware"
	"paw-n-care/internal/search"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, rows search.RowSource, cfg search.Config) {
	r.Route("/medical-records", func(mr chi.Router) {
		mr.Post("/", createRecordHandler(svc))
		mr.Get("/", listRecordsHandler(rows, cfg))
		mr.Get("/{recordID}", getRecordHandler(svc))
		mr.Patch("/{recordID}", updateRecordHandler(svc))
	})
}

type createRecordRequest struct {
	AppointmentID *int64 `json:"appointment_id"`
	PetID         int64  `json:"pet_id"`
	VetID         int64  `json:"vet_id"`

	VisitDate            string `json:"visit_date"` // YYYY-MM-DD, opcional
	Diagnosis            string `json:"diagnosis"`
	Treatment            string `json:"treatment"`
	PrescribedMedication string `json:"prescribed_medication"`
	Notes                string `json:"notes"`
}

type updateRecordRequest struct {
	Diagnosis            *string `json:"diagnosis"`
	Treatment            *string `json:"treatment"`
	PrescribedMedication *string `json:"prescribed_medication"`
	Notes                *string `json:"notes"`
}

type recordResponse struct {
	ID                   int64     `json:"record_id"`
	AppointmentID        *int64    `json:"appointment_id"`
	PetID                int64     `json:"pet_id"`
	VetID                int64     `json:"vet_id"`
	VisitDate            time.Time `json:"visit_date"`
	Diagnosis            string    `json:"diagnosis"`
	Treatment            string    `json:"treatment"`
	PrescribedMedication string    `json:"prescribed_medication"`
	Notes                string    `json:"notes"`
}

func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var visited time.Time
		if req.VisitDate != "" {
			t, err := time.Parse(search.DateLayout, req.VisitDate)
			if err != nil {
				http.Error(w, "visit_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			visited = t
		}

		m, err := svc.Create(r.Context(), CreateInput{
			AppointmentID:        req.AppointmentID,
			PetID:                req.PetID,
			VetID:                req.VetID,
			VisitedAt:            visited,
			Diagnosis:            req.Diagnosis,
			Treatment:            req.Treatment,
			PrescribedMedication: req.PrescribedMedication,
			Notes:                req.Notes,
		})
		if err != nil {
			writeRecordError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(m))
	}
}

func listRecordsHandler(rows search.RowSource, cfg search.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		category := r.URL.Query().Get("search-dropdown")
		if category == "" {
			category = search.AllCategories
		}
		query := r.URL.Query().Get("search-query")

		base, err := rows.Rows(r.Context(), cfg.Entity)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, search.Resolve(base, category, query, cfg))
	}
}

func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "recordID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid record id", http.StatusBadRequest)
			return
		}

		m, err := svc.GetByID(r.Context(), id)
		if err != nil {
			http.Error(w, "medical record not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponse(m))
	}
}

func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "recordID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid record id", http.StatusBadRequest)
			return
		}

		var req updateRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Update(r.Context(), id, UpdateInput{
			Diagnosis:            req.Diagnosis,
			Treatment:            req.Treatment,
			PrescribedMedication: req.PrescribedMedication,
			Notes:                req.Notes,
		})
		if err != nil {
			writeRecordError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponse(m))
	}
}

func writeRecordError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "medical record not found", http.StatusNotFound)
	case errors.Is(err, pets.ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, vets.ErrNotFound):
		http.Error(w, "veterinarian not found", http.StatusNotFound)
	case errors.Is(err, appointments.ErrNotFound):
		http.Error(w, "appointment not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toRecordResponse(m MedicalRecord) recordResponse {
	return recordResponse{
		ID:                   m.ID,
		AppointmentID:        m.AppointmentID,
		PetID:                m.PetID,
		VetID:                m.VetID,
		VisitDate:            m.VisitedAt,
		Diagnosis:            m.Diagnosis,
		Treatment:            m.Treatment,
		PrescribedMedication: m.PrescribedMedication,
		Notes:                m.Notes,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
