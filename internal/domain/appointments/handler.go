package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"paw-n-care/internal/domain/owners"
	"paw-n-care/internal/domain/pets"
	"paw-n-care/internal/domain/vets"
	"paw-n-care/internal/middleware"
	"paw-n-care/internal/search"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, rows search.RowSource, cfg search.Config) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createAppointmentHandler(svc))
		ar.Get("/", listAppointmentsHandler(rows, cfg))
		ar.Get("/{appointmentID}", getAppointmentHandler(svc))
		ar.Patch("/{appointmentID}", updateAppointmentHandler(svc))
		ar.Delete("/{appointmentID}", deleteAppointmentHandler(svc))
	})
}

type createAppointmentRequest struct {
	PetID   int64  `json:"pet_id"`
	OwnerID int64  `json:"owner_id"`
	VetID   int64  `json:"vet_id"`

	Date      string `json:"appointment_date"` // YYYY-MM-DD
	StartTime string `json:"appointment_time"` // HH:MM
	Reason    string `json:"reason"`
	Status    string `json:"status"`
}

type updateAppointmentRequest struct {
	Date      *string `json:"appointment_date"`
	StartTime *string `json:"appointment_time"`
	Reason    *string `json:"reason"`
	Status    *string `json:"status"`
}

type appointmentResponse struct {
	ID        int64     `json:"appointment_id"`
	PetID     int64     `json:"pet_id"`
	OwnerID   int64     `json:"owner_id"`
	VetID     int64     `json:"vet_id"`
	Date      time.Time `json:"appointment_date"`
	StartTime string    `json:"appointment_time"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
}

// createAppointmentHandler godoc
// @Summary Crear cita
// @Description Crea una cita para una mascota con un veterinario. Valida que pet, owner y vet existan y que la mascota pertenezca al dueño. Status: Scheduled | Completed | Canceled.
// @Tags appointments
// @Accept json
// @Produce json
// @Param payload body createAppointmentRequest true "Datos de la cita; appointment_date YYYY-MM-DD, appointment_time HH:MM"
// @Success 201 {object} appointmentResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 404 {string} string "pet / owner / vet not found"
// @Failure 409 {string} string "la mascota no pertenece al dueño"
// @Router /appointments [post]
func createAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		date, err := time.Parse(search.DateLayout, req.Date)
		if err != nil {
			http.Error(w, "appointment_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			PetID:     req.PetID,
			OwnerID:   req.OwnerID,
			VetID:     req.VetID,
			Date:      date,
			StartTime: req.StartTime,
			Reason:    req.Reason,
			Status:    req.Status,
		})
		if err != nil {
			writeAppointmentError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
	}
}

// listAppointmentsHandler godoc
// @Summary Listar / buscar citas
// @Description Sin search-query lista todo. search-dropdown elige la categoría ("all_categories" o una de field_mappings); search-query es el texto.
// @Tags appointments
// @Produce json
// @Param search-dropdown query string false "Categoría de búsqueda"
// @Param search-query query string false "Texto de búsqueda"
// @Success 200 {object} search.Result
// @Router /appointments [get]
func listAppointmentsHandler(rows search.RowSource, cfg search.Config) http.HandlerFunc {
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

func getAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid appointment id", http.StatusBadRequest)
			return
		}

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func updateAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid appointment id", http.StatusBadRequest)
			return
		}

		var req updateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var date *time.Time
		if req.Date != nil {
			t, err := time.Parse(search.DateLayout, *req.Date)
			if err != nil {
				http.Error(w, "appointment_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			date = &t
		}

		a, err := svc.Update(r.Context(), id, UpdateInput{
			Date:      date,
			StartTime: req.StartTime,
			Reason:    req.Reason,
			Status:    req.Status,
		})
		if err != nil {
			writeAppointmentError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(a))
	}
}

func deleteAppointmentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "appointmentID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid appointment id", http.StatusBadRequest)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "appointment not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writeAppointmentError mapea el resultado del servicio a HTTP: lookups que
// fallan son 404 (no se tragan, a diferencia del sistema original), la
// mascota de otro dueño es 409.
func writeAppointmentError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrOwnerMismatch):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "appointment not found", http.StatusNotFound)
	case errors.Is(err, pets.ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, owners.ErrNotFound):
		http.Error(w, "owner not found", http.StatusNotFound)
	case errors.Is(err, vets.ErrNotFound):
		http.Error(w, "veterinarian not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAppointmentResponse(a Appointment) appointmentResponse {
	return appointmentResponse{
		ID:        a.ID,
		PetID:     a.PetID,
		OwnerID:   a.OwnerID,
		VetID:     a.VetID,
		Date:      a.Date,
		StartTime: a.StartTime,
		Reason:    a.Reason,
		Status:    string(a.Status),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
