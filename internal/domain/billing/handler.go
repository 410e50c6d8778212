package billing

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"paw-n-care/internal/domain/appointments"
	"paw-n-care/internal/middleware"
	"paw-n-care/internal/search"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, rows search.RowSource, cfg search.Config) {
	r.Route("/billing", func(br chi.Router) {
		br.Post("/", createBillHandler(svc))
		br.Get("/", listBillsHandler(rows, cfg))
		br.Get("/{billID}", getBillHandler(svc))
		br.Patch("/{billID}", updateBillHandler(svc))
	})
}

type createBillRequest struct {
	AppointmentID int64   `json:"appointment_id"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentStatus string  `json:"payment_status"`
	PaymentMethod string  `json:"payment_method"`
	PaymentDate   string  `json:"payment_date"` // YYYY-MM-DD, opcional
}

type updateBillRequest struct {
	TotalAmount   *float64 `json:"total_amount"`
	PaymentStatus *string  `json:"payment_status"`
	PaymentMethod *string  `json:"payment_method"`
	PaymentDate   *string  `json:"payment_date"`
}

type billResponse struct {
	ID            int64     `json:"bill_id"`
	AppointmentID int64     `json:"appointment_id"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod string    `json:"payment_method"`
	PaymentDate   time.Time `json:"payment_date"`
}

func createBillHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createBillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var paidAt time.Time
		if req.PaymentDate != "" {
			t, err := time.Parse(search.DateLayout, req.PaymentDate)
			if err != nil {
				http.Error(w, "payment_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			paidAt = t
		}

		b, err := svc.Create(r.Context(), CreateInput{
			AppointmentID: req.AppointmentID,
			TotalAmount:   req.TotalAmount,
			PaymentStatus: req.PaymentStatus,
			PaymentMethod: req.PaymentMethod,
			PaidAt:        paidAt,
		})
		if err != nil {
			writeBillError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toBillResponse(b))
	}
}

func listBillsHandler(rows search.RowSource, cfg search.Config) http.HandlerFunc {
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

func getBillHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "billID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid bill id", http.StatusBadRequest)
			return
		}

		b, err := svc.GetByID(r.Context(), id)
		if err != nil {
			http.Error(w, "bill not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toBillResponse(b))
	}
}

func updateBillHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "billID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid bill id", http.StatusBadRequest)
			return
		}

		var req updateBillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var paidAt *time.Time
		if req.PaymentDate != nil {
			t, err := time.Parse(search.DateLayout, *req.PaymentDate)
			if err != nil {
				http.Error(w, "payment_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			paidAt = &t
		}

		b, err := svc.Update(r.Context(), id, UpdateInput{
			TotalAmount:   req.TotalAmount,
			PaymentStatus: req.PaymentStatus,
			PaymentMethod: req.PaymentMethod,
			PaidAt:        paidAt,
		})
		if err != nil {
			writeBillError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toBillResponse(b))
	}
}

func writeBillError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "bill not found", http.StatusNotFound)
	case errors.Is(err, appointments.ErrNotFound):
		http.Error(w, "appointment not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toBillResponse(b Bill) billResponse {
	return billResponse{
		ID:            b.ID,
		AppointmentID: b.AppointmentID,
		TotalAmount:   b.TotalAmount,
		PaymentStatus: string(b.PaymentStatus),
		PaymentMethod: string(b.PaymentMethod),
		PaymentDate:   b.PaidAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
