package stats

import (
	"encoding/json"
	"net/http"
	"strconv"

	"paw-n-care/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, agg *Aggregator) {
	r.Get("/statistics", statisticsHandler(agg))
}

// statisticsHandler godoc
// @Summary Panel de estadísticas de la clínica
// @Description Métricas agregadas: por veterinario (el param vet, o el primero registrado si se omite), especies, diagnósticos y tratamientos más frecuentes, y desglose de facturación.
// @Tags statistics
// @Produce json
// @Param vet query int false "ID del veterinario a destacar"
// @Success 200 {object} Report
// @Failure 400 {string} string "invalid vet id"
// @Router /statistics [get]
func statisticsHandler(agg *Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetClaims(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var vetID int64
		if raw := r.URL.Query().Get("vet"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				http.Error(w, "invalid vet id", http.StatusBadRequest)
				return
			}
			vetID = id
		}

		report, err := agg.Compute(r.Context(), vetID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(report)
	}
}
